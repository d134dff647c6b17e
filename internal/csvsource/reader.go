// Package csvsource читает загруженные CSV-файлы в текстовые записи показаний.
// Приведение типов выполняет пакет aggregation.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shenikar/waste_dashboard/internal/models"
)

// ErrMalformedCSV возвращается, если CSV не удается разобрать
var ErrMalformedCSV = errors.New("malformed csv")

type column int

const (
	colLocality column = iota
	colWasteType
	colConfidence
	colTimestamp
	colLat
	colLng
	colCollector
)

// Допустимые заголовки в нижнем регистре
var headerAliases = map[string]column{
	"locality":      colLocality,
	"waste_type":    colWasteType,
	"wastetype":     colWasteType,
	"confidence(%)": colConfidence,
	"confidence":    colConfidence,
	"timestamp":     colTimestamp,
	"lat":           colLat,
	"latitude":      colLat,
	"lng":           colLng,
	"lon":           colLng,
	"longitude":     colLng,
	"collector":     colCollector,
}

// ReadRecords читает CSV целиком. Первая строка - заголовок.
// Неизвестные колонки игнорируются, отсутствующие остаются пустыми.
// Пустой ввод не является ошибкой.
func ReadRecords(r io.Reader) ([]models.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []models.RawRecord{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrMalformedCSV, err)
	}
	positions := mapHeader(header)

	records := make([]models.RawRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}
		if isBlank(row) {
			continue
		}
		records = append(records, toRawRecord(row, positions))
	}
	return records, nil
}

func mapHeader(header []string) map[column]int {
	positions := make(map[column]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		key := strings.ToLower(strings.TrimSpace(name))
		col, ok := headerAliases[key]
		if !ok {
			continue
		}
		// при дублировании колонки используется первая
		if _, seen := positions[col]; !seen {
			positions[col] = i
		}
	}
	return positions
}

func toRawRecord(row []string, positions map[column]int) models.RawRecord {
	field := func(col column) string {
		i, ok := positions[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	return models.RawRecord{
		Locality:   field(colLocality),
		WasteType:  field(colWasteType),
		Confidence: field(colConfidence),
		Timestamp:  field(colTimestamp),
		Lat:        field(colLat),
		Lng:        field(colLng),
		Collector:  field(colCollector),
	}
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
