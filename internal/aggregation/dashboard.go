package aggregation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/waste_dashboard/internal/models"
)

// BuildDashboard выполняет полный прогон агрегации над готовым набором записей.
// Каждый вызов строит все данные заново.
func BuildDashboard(runID uuid.UUID, generatedAt time.Time, records []models.Record) *models.Dashboard {
	summaries, global := Aggregate(records)
	bars, donuts := LocalitySeries(summaries)

	return &models.Dashboard{
		RunID:        runID,
		GeneratedAt:  generatedAt,
		Localities:   summaries,
		Global:       global,
		LocalityBars: bars,
		Donuts:       donuts,
		WasteTypes:   WasteTypeTotals(records),
		Daily:        DailyAverages(records),
		Alerts:       Alerts(summaries),
		Markers:      Markers(records, summaries),
	}
}
