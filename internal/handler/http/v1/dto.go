package v1

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TextValue принимает в JSON как строку, так и число.
// Значение передается в агрегацию как текст и приводится там.
type TextValue string

func (v *TextValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}
	*v = TextValue(data)
	return nil
}

// RecordRequest DTO одной строки показаний
// @Description DTO одной строки показаний
type RecordRequest struct {
	Locality   string    `json:"locality" validate:"max=255"`
	WasteType  string    `json:"waste_type" validate:"max=255"`
	Confidence TextValue `json:"confidence" swaggertype:"string" validate:"max=64"`
	Timestamp  string    `json:"timestamp,omitempty" validate:"max=64"`
	Lat        TextValue `json:"lat,omitempty" swaggertype:"string" validate:"max=64"`
	Lng        TextValue `json:"lng,omitempty" swaggertype:"string" validate:"max=64"`
	Collector  string    `json:"collector,omitempty" validate:"max=255"`
}

// UploadRecordsRequest DTO для загрузки набора показаний
// @Description DTO для загрузки набора показаний
type UploadRecordsRequest struct {
	Records []RecordRequest `json:"records" validate:"required,max=100000,dive"`
}

// DashboardQuery параметры фильтрации дашборда
type DashboardQuery struct {
	Localities []string `form:"locality" validate:"max=100,dive,max=255"`
	WasteTypes []string `form:"waste_type" validate:"max=100,dive,max=255"`
}

// WasteTypeResponse DTO средней уверенности по типу отходов
type WasteTypeResponse struct {
	WasteType string  `json:"waste_type"`
	Average   float64 `json:"average"`
	Display   string  `json:"display"`
	Samples   int     `json:"samples"`
}

// LocalityResponse DTO сводки по локации
// @Description DTO сводки по локации
type LocalityResponse struct {
	Locality       string              `json:"locality"`
	Classification string              `json:"classification"`
	OverallAverage float64             `json:"overall_average"`
	Severe         bool                `json:"severe"`
	RecordCount    int                 `json:"record_count"`
	WasteTypes     []WasteTypeResponse `json:"waste_types"`
}

// MostFilledResponse DTO самой заполненной локации
type MostFilledResponse struct {
	Locality string  `json:"locality"`
	Average  float64 `json:"average"`
}

// GlobalSummaryResponse DTO общей статистики. Пустые значения сериализуются как null.
// @Description DTO общей статистики
type GlobalSummaryResponse struct {
	MostFilled    *MostFilledResponse `json:"most_filled"`
	WarningCount  int                 `json:"warning_count"`
	CriticalCount int                 `json:"critical_count"`
	SevereCount   int                 `json:"severe_count"`
	MeanAverage   *float64            `json:"mean_average"`
	LocalityCount int                 `json:"locality_count"`
	RecordCount   int                 `json:"record_count"`
}

// SeriesResponse DTO данных одного графика
type SeriesResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// WasteTypeTotalResponse DTO итога по типу отходов
type WasteTypeTotalResponse struct {
	WasteType string  `json:"waste_type"`
	Count     int     `json:"count"`
	Average   float64 `json:"average"`
}

// WasteTypeBreakdownResponse DTO круговой диаграммы
type WasteTypeBreakdownResponse struct {
	Totals   []WasteTypeTotalResponse `json:"totals"`
	Dominant string                   `json:"dominant,omitempty"`
}

// DailyAverageResponse DTO точки линейного графика
type DailyAverageResponse struct {
	Date    string  `json:"date"`
	Average float64 `json:"average"`
	Samples int     `json:"samples"`
}

// ChartsResponse DTO данных всех графиков
type ChartsResponse struct {
	LocalityAverages SeriesResponse             `json:"locality_averages"`
	Donuts           map[string]SeriesResponse  `json:"donuts"`
	WasteTypes       WasteTypeBreakdownResponse `json:"waste_types"`
	Daily            []DailyAverageResponse     `json:"daily"`
}

// AlertResponse DTO уведомления
type AlertResponse struct {
	Locality string  `json:"locality"`
	Average  float64 `json:"average"`
	Level    string  `json:"level"`
	Message  string  `json:"message"`
}

// MarkerResponse DTO точки на карте
type MarkerResponse struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Locality       string  `json:"locality"`
	WasteType      string  `json:"waste_type"`
	Confidence     float64 `json:"confidence"`
	Classification string  `json:"classification"`
}

// DashboardResponse DTO ответа с дашбордом
// @Description DTO ответа с дашбордом
type DashboardResponse struct {
	RunID       uuid.UUID             `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Localities  []LocalityResponse    `json:"localities"`
	Global      GlobalSummaryResponse `json:"global"`
	Charts      ChartsResponse        `json:"charts"`
	Alerts      []AlertResponse       `json:"alerts"`
	Markers     []MarkerResponse      `json:"markers"`
}

// LeaderboardEntryResponse DTO строки таблицы лидеров
type LeaderboardEntryResponse struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// CollectorResponse DTO профиля сборщика
// @Description DTO профиля сборщика
type CollectorResponse struct {
	Name    string `json:"name"`
	Points  int    `json:"points"`
	History string `json:"history"`
}
