package models

import (
	"time"

	"github.com/google/uuid"
)

// Series - данные для одного графика: подписи и значения одинаковой длины
type Series struct {
	Labels []string
	Values []float64
}

// WasteTypeTotal - итог по типу отходов во всех локациях
type WasteTypeTotal struct {
	WasteType string
	Count     int
	Mean      float64
}

// WasteTypeBreakdown - данные круговой диаграммы по типам отходов
type WasteTypeBreakdown struct {
	Totals   []WasteTypeTotal
	Dominant string // тип с наибольшим числом записей, пустой при отсутствии данных
}

// DailyAverage - средняя уверенность за день
type DailyAverage struct {
	Date    string
	Average float64
	Samples int
}

// AlertLevel - уровень уведомления
type AlertLevel string

const (
	AlertLevelCritical AlertLevel = "critical"
	AlertLevelSevere   AlertLevel = "severe"
)

// Alert - уведомление о переполненной локации
type Alert struct {
	Locality string
	Average  float64
	Level    AlertLevel
	Message  string
}

// Marker - точка на карте
type Marker struct {
	Latitude       float64
	Longitude      float64
	Locality       string
	WasteType      string
	Confidence     float64
	Classification Classification
}

// Dashboard - результат одного прогона агрегации
type Dashboard struct {
	RunID        uuid.UUID
	GeneratedAt  time.Time
	Localities   []LocalitySummary
	Global       GlobalSummary
	LocalityBars Series
	Donuts       map[string]Series
	WasteTypes   WasteTypeBreakdown
	Daily        []DailyAverage
	Alerts       []Alert
	Markers      []Marker
}

// Snapshot - последний загруженный набор записей
type Snapshot struct {
	RunID      uuid.UUID `json:"run_id"`
	IngestedAt time.Time `json:"ingested_at"`
	Records    []Record  `json:"records"`
}
