package aggregation

import (
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/waste_dashboard/internal/models"
)

const (
	// UnknownLocality - корзина для записей без локации
	UnknownLocality = "Unknown Locality"
	// UnknownWasteType - корзина для записей без типа отходов
	UnknownWasteType = "Unknown"
)

// Normalize приводит текстовую запись к типизированной.
// Некорректная уверенность превращается в 0, некорректные координаты отбрасываются.
func Normalize(raw models.RawRecord) models.Record {
	rec := models.Record{
		Locality:   orDefault(raw.Locality, UnknownLocality),
		WasteType:  orDefault(raw.WasteType, UnknownWasteType),
		Confidence: parseConfidence(raw.Confidence),
		Timestamp:  strings.TrimSpace(raw.Timestamp),
		Collector:  strings.TrimSpace(raw.Collector),
	}

	lat, latOK := parseCoordinate(raw.Lat, 90)
	lng, lngOK := parseCoordinate(raw.Lng, 180)
	if latOK && lngOK {
		rec.Latitude = &lat
		rec.Longitude = &lng
	}
	return rec
}

// NormalizeAll применяет Normalize ко всем записям, сохраняя порядок
func NormalizeAll(raws []models.RawRecord) []models.Record {
	records := make([]models.Record, len(raws))
	for i, raw := range raws {
		records[i] = Normalize(raw)
	}
	return records
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

// parseConfidence допускает пробелы и один завершающий знак процента
func parseConfidence(text string) float64 {
	text = strings.TrimSpace(text)
	text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
	v, ok := parseFinite(text)
	if !ok {
		return 0
	}
	return v
}

func parseCoordinate(text string, limit float64) (float64, bool) {
	v, ok := parseFinite(strings.TrimSpace(text))
	if !ok || math.Abs(v) > limit {
		return 0, false
	}
	return v, true
}

func parseFinite(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
