package v1

import (
	"math"

	"github.com/shenikar/waste_dashboard/internal/aggregation"
	"github.com/shenikar/waste_dashboard/internal/leaderboard"
	"github.com/shenikar/waste_dashboard/internal/models"
)

// DTOToRawRecords преобразует DTO загрузки в текстовые записи
func DTOToRawRecords(req UploadRecordsRequest) []models.RawRecord {
	raws := make([]models.RawRecord, len(req.Records))
	for i, r := range req.Records {
		raws[i] = models.RawRecord{
			Locality:   r.Locality,
			WasteType:  r.WasteType,
			Confidence: string(r.Confidence),
			Timestamp:  r.Timestamp,
			Lat:        string(r.Lat),
			Lng:        string(r.Lng),
			Collector:  r.Collector,
		}
	}
	return raws
}

// QueryToFilter преобразует параметры запроса в фильтр агрегации
func QueryToFilter(q DashboardQuery) aggregation.Filter {
	return aggregation.Filter{
		Localities: q.Localities,
		WasteTypes: q.WasteTypes,
	}
}

// ModelToDashboardResponse преобразует дашборд в DTO. Средние округляются до 2 знаков.
func ModelToDashboardResponse(d *models.Dashboard) *DashboardResponse {
	localities := make([]LocalityResponse, len(d.Localities))
	for i, l := range d.Localities {
		localities[i] = modelToLocalityResponse(l)
	}

	donuts := make(map[string]SeriesResponse, len(d.Donuts))
	for locality, s := range d.Donuts {
		donuts[locality] = modelToSeriesResponse(s)
	}

	totals := make([]WasteTypeTotalResponse, len(d.WasteTypes.Totals))
	for i, t := range d.WasteTypes.Totals {
		totals[i] = WasteTypeTotalResponse{
			WasteType: t.WasteType,
			Count:     t.Count,
			Average:   models.Round2(t.Mean),
		}
	}

	daily := make([]DailyAverageResponse, len(d.Daily))
	for i, day := range d.Daily {
		daily[i] = DailyAverageResponse{
			Date:    day.Date,
			Average: models.Round2(day.Average),
			Samples: day.Samples,
		}
	}

	alerts := make([]AlertResponse, len(d.Alerts))
	for i, a := range d.Alerts {
		alerts[i] = AlertResponse{
			Locality: a.Locality,
			Average:  models.Round2(a.Average),
			Level:    string(a.Level),
			Message:  a.Message,
		}
	}

	markers := make([]MarkerResponse, len(d.Markers))
	for i, m := range d.Markers {
		markers[i] = MarkerResponse{
			Latitude:       m.Latitude,
			Longitude:      m.Longitude,
			Locality:       m.Locality,
			WasteType:      m.WasteType,
			Confidence:     m.Confidence,
			Classification: string(m.Classification),
		}
	}

	return &DashboardResponse{
		RunID:       d.RunID,
		GeneratedAt: d.GeneratedAt,
		Localities:  localities,
		Global:      modelToGlobalResponse(d.Global),
		Charts: ChartsResponse{
			LocalityAverages: modelToSeriesResponse(d.LocalityBars),
			Donuts:           donuts,
			WasteTypes: WasteTypeBreakdownResponse{
				Totals:   totals,
				Dominant: d.WasteTypes.Dominant,
			},
			Daily: daily,
		},
		Alerts:  alerts,
		Markers: markers,
	}
}

func modelToLocalityResponse(l models.LocalitySummary) LocalityResponse {
	types := make([]WasteTypeResponse, len(l.WasteTypes))
	for i, t := range l.WasteTypes {
		types[i] = WasteTypeResponse{
			WasteType: t.WasteType,
			Average:   t.Rounded(),
			Display:   t.Display(),
			Samples:   t.Samples,
		}
	}
	return LocalityResponse{
		Locality:       l.Locality,
		Classification: string(l.Classification),
		OverallAverage: models.Round2(l.OverallAverage),
		Severe:         l.Severe,
		RecordCount:    l.RecordCount,
		WasteTypes:     types,
	}
}

// modelToGlobalResponse переводит NaN и отсутствующую локацию в null
func modelToGlobalResponse(g models.GlobalSummary) GlobalSummaryResponse {
	resp := GlobalSummaryResponse{
		WarningCount:  g.WarningCount,
		CriticalCount: g.CriticalCount,
		SevereCount:   g.SevereCount,
		LocalityCount: g.LocalityCount,
		RecordCount:   g.RecordCount,
	}
	if g.MostFilled != nil {
		resp.MostFilled = &MostFilledResponse{
			Locality: g.MostFilled.Locality,
			Average:  models.Round2(g.MostFilled.Average),
		}
	}
	if !math.IsNaN(g.MeanAverage) {
		mean := models.Round2(g.MeanAverage)
		resp.MeanAverage = &mean
	}
	return resp
}

func modelToSeriesResponse(s models.Series) SeriesResponse {
	labels := s.Labels
	if labels == nil {
		labels = []string{}
	}
	values := s.Values
	if values == nil {
		values = []float64{}
	}
	return SeriesResponse{Labels: labels, Values: values}
}

// EntriesToLeaderboardResponse преобразует таблицу лидеров в DTO
func EntriesToLeaderboardResponse(entries []leaderboard.Entry) []LeaderboardEntryResponse {
	responses := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = LeaderboardEntryResponse{
			Rank:   e.Rank,
			Name:   e.Collector.Name,
			Points: e.Collector.Points,
		}
	}
	return responses
}

// ModelToCollectorResponse преобразует профиль сборщика в DTO
func ModelToCollectorResponse(c *models.Collector) *CollectorResponse {
	return &CollectorResponse{
		Name:    c.Name,
		Points:  c.Points,
		History: c.History,
	}
}
