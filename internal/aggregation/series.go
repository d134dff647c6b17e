package aggregation

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shenikar/waste_dashboard/internal/models"
)

const dateLayout = "2006-01-02"

// Filter - условия отбора записей перед повторной агрегацией.
// Пустой список означает отсутствие ограничения.
type Filter struct {
	Localities []string
	WasteTypes []string
}

// IsEmpty сообщает, что фильтр ничего не ограничивает
func (f Filter) IsEmpty() bool {
	return len(f.Localities) == 0 && len(f.WasteTypes) == 0
}

// FilterRecords возвращает записи, подходящие под фильтр, в исходном порядке
func FilterRecords(records []models.Record, f Filter) []models.Record {
	if f.IsEmpty() {
		return records
	}
	filtered := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if !matchesAny(orDefault(rec.Locality, UnknownLocality), f.Localities) {
			continue
		}
		if !matchesAny(orDefault(rec.WasteType, UnknownWasteType), f.WasteTypes) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func matchesAny(value string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimSpace(a), value) {
			return true
		}
	}
	return false
}

// WasteTypeTotals считает количество записей и среднюю уверенность по каждому типу отходов
// во всех локациях. Dominant - тип с наибольшим числом записей, при равенстве первый встреченный.
func WasteTypeTotals(records []models.Record) models.WasteTypeBreakdown {
	totals := make([]models.WasteTypeTotal, 0)
	sums := make([]float64, 0)
	index := make(map[string]int)

	for _, rec := range records {
		wasteType := orDefault(rec.WasteType, UnknownWasteType)
		i, ok := index[wasteType]
		if !ok {
			i = len(totals)
			index[wasteType] = i
			totals = append(totals, models.WasteTypeTotal{WasteType: wasteType})
			sums = append(sums, 0)
		}
		totals[i].Count++
		sums[i] += rec.Confidence
	}

	breakdown := models.WasteTypeBreakdown{Totals: totals}
	best := 0
	for i := range totals {
		totals[i].Mean = sums[i] / float64(totals[i].Count)
		if totals[i].Count > best {
			best = totals[i].Count
			breakdown.Dominant = totals[i].WasteType
		}
	}
	return breakdown
}

// DailyAverages группирует записи по дате из Timestamp и возвращает средние по возрастанию даты.
// Записи без распознаваемой даты пропускаются.
func DailyAverages(records []models.Record) []models.DailyAverage {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, rec := range records {
		date, ok := datePrefix(rec.Timestamp)
		if !ok {
			continue
		}
		sums[date] += rec.Confidence
		counts[date]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	daily := make([]models.DailyAverage, len(dates))
	for i, date := range dates {
		daily[i] = models.DailyAverage{
			Date:    date,
			Average: sums[date] / float64(counts[date]),
			Samples: counts[date],
		}
	}
	return daily
}

func datePrefix(timestamp string) (string, bool) {
	timestamp = strings.TrimSpace(timestamp)
	if i := strings.IndexAny(timestamp, "T "); i >= 0 {
		timestamp = timestamp[:i]
	}
	if _, err := time.Parse(dateLayout, timestamp); err != nil {
		return "", false
	}
	return timestamp, true
}

// LocalitySeries строит столбчатую диаграмму средних по локациям
// и кольцевые диаграммы типов отходов для каждой локации.
func LocalitySeries(summaries []models.LocalitySummary) (models.Series, map[string]models.Series) {
	bars := models.Series{
		Labels: make([]string, len(summaries)),
		Values: make([]float64, len(summaries)),
	}
	donuts := make(map[string]models.Series, len(summaries))

	for i, s := range summaries {
		bars.Labels[i] = s.Locality
		bars.Values[i] = models.Round2(s.OverallAverage)

		donut := models.Series{
			Labels: make([]string, len(s.WasteTypes)),
			Values: make([]float64, len(s.WasteTypes)),
		}
		for j, stat := range s.WasteTypes {
			donut.Labels[j] = stat.WasteType
			donut.Values[j] = stat.Rounded()
		}
		donuts[s.Locality] = donut
	}
	return bars, donuts
}

// Alerts возвращает уведомления для локаций в состоянии CRITICAL
func Alerts(summaries []models.LocalitySummary) []models.Alert {
	alerts := make([]models.Alert, 0)
	for _, s := range summaries {
		if s.Classification != models.ClassificationCritical {
			continue
		}
		level := models.AlertLevelCritical
		if s.Severe {
			level = models.AlertLevelSevere
		}
		alerts = append(alerts, models.Alert{
			Locality: s.Locality,
			Average:  s.OverallAverage,
			Level:    level,
			Message:  fmt.Sprintf("%s bin is full. Notify municipal team.", s.Locality),
		})
	}
	return alerts
}

// Markers возвращает точки для карты по записям с корректными координатами
func Markers(records []models.Record, summaries []models.LocalitySummary) []models.Marker {
	classes := make(map[string]models.Classification, len(summaries))
	for _, s := range summaries {
		classes[s.Locality] = s.Classification
	}

	markers := make([]models.Marker, 0)
	for _, rec := range records {
		if !rec.HasLocation() {
			continue
		}
		locality := orDefault(rec.Locality, UnknownLocality)
		class, ok := classes[locality]
		if !ok {
			class = Classify(rec.Confidence)
		}
		markers = append(markers, models.Marker{
			Latitude:       *rec.Latitude,
			Longitude:      *rec.Longitude,
			Locality:       locality,
			WasteType:      orDefault(rec.WasteType, UnknownWasteType),
			Confidence:     rec.Confidence,
			Classification: class,
		})
	}
	return markers
}
