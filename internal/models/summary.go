package models

import (
	"math"
	"strconv"
)

// Classification - состояние заполненности локации
type Classification string

const (
	ClassificationOK       Classification = "OK"
	ClassificationWarning  Classification = "WARNING"
	ClassificationCritical Classification = "CRITICAL"
)

// WasteTypeStat - средняя уверенность для пары (локация, тип отходов)
type WasteTypeStat struct {
	WasteType string
	Mean      float64 // без округления, используется в дальнейших вычислениях
	Samples   int
}

// Rounded возвращает среднее, округленное до 2 знаков
func (s WasteTypeStat) Rounded() float64 {
	return Round2(s.Mean)
}

// Display возвращает среднее в виде строки с 2 знаками после запятой
func (s WasteTypeStat) Display() string {
	return strconv.FormatFloat(s.Mean, 'f', 2, 64)
}

// LocalitySummary - сводка по одной локации
type LocalitySummary struct {
	Locality       string
	WasteTypes     []WasteTypeStat // в порядке первого появления
	OverallAverage float64         // среднее по всем записям локации
	RecordCount    int
	Classification Classification
	Severe         bool
}

// MostFilled - самая заполненная локация
type MostFilled struct {
	Locality string
	Average  float64
}

// GlobalSummary - общая статистика по всем локациям
type GlobalSummary struct {
	MostFilled    *MostFilled // nil, если записей нет
	WarningCount  int
	CriticalCount int
	SevereCount   int
	MeanAverage   float64 // NaN, если записей нет
	LocalityCount int
	RecordCount   int
}

// HasData сообщает, была ли хотя бы одна запись
func (g GlobalSummary) HasData() bool {
	return g.LocalityCount > 0 && !math.IsNaN(g.MeanAverage)
}

// Round2 округляет значение до 2 знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
