package aggregation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/waste_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestFilterRecords(t *testing.T) {
	records := []models.Record{
		rec("Belgaum", "Plastic", 90),
		rec("Hubli", "Plastic", 30),
		rec("Belgaum", "Organic", 80),
		rec("", "Metal", 10),
	}

	t.Run("empty filter returns input", func(t *testing.T) {
		assert.Equal(t, records, FilterRecords(records, Filter{}))
	})

	t.Run("by locality, case insensitive", func(t *testing.T) {
		got := FilterRecords(records, Filter{Localities: []string{"belgaum"}})
		require.Len(t, got, 2)
		assert.Equal(t, "Plastic", got[0].WasteType)
		assert.Equal(t, "Organic", got[1].WasteType)
	})

	t.Run("by locality and waste type", func(t *testing.T) {
		got := FilterRecords(records, Filter{
			Localities: []string{"Belgaum", "Hubli"},
			WasteTypes: []string{"Plastic"},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "Belgaum", got[0].Locality)
		assert.Equal(t, "Hubli", got[1].Locality)
	})

	t.Run("sentinel bucket", func(t *testing.T) {
		got := FilterRecords(records, Filter{Localities: []string{UnknownLocality}})
		require.Len(t, got, 1)
		assert.Equal(t, 10.0, got[0].Confidence)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterRecords(records, Filter{WasteTypes: []string{"Glass"}}))
	})
}

func TestWasteTypeTotals(t *testing.T) {
	records := []models.Record{
		rec("Belgaum", "Plastic", 40),
		rec("Hubli", "Organic", 60),
		rec("Hubli", "Plastic", 60),
		rec("Dharwad", "Organic", 20),
		rec("Dharwad", "Metal", 20),
	}

	got := WasteTypeTotals(records)

	require.Len(t, got.Totals, 3)
	assert.Equal(t, "Plastic", got.Totals[0].WasteType)
	assert.Equal(t, 2, got.Totals[0].Count)
	assert.InDelta(t, 50.0, got.Totals[0].Mean, 1e-9)
	assert.Equal(t, "Organic", got.Totals[1].WasteType)
	assert.InDelta(t, 40.0, got.Totals[1].Mean, 1e-9)
	assert.Equal(t, "Metal", got.Totals[2].WasteType)
	// Plastic и Organic по 2 записи, побеждает первый
	assert.Equal(t, "Plastic", got.Dominant)
}

func TestWasteTypeTotals_Empty(t *testing.T) {
	got := WasteTypeTotals(nil)

	assert.Empty(t, got.Totals)
	assert.Empty(t, got.Dominant)
}

func TestDailyAverages(t *testing.T) {
	records := []models.Record{
		{Locality: "A", Confidence: 80, Timestamp: "2024-03-02T09:00:00Z"},
		{Locality: "A", Confidence: 40, Timestamp: "2024-03-01 08:00"},
		{Locality: "B", Confidence: 60, Timestamp: "2024-03-02"},
		{Locality: "B", Confidence: 99, Timestamp: ""},
		{Locality: "B", Confidence: 99, Timestamp: "yesterday"},
		{Locality: "C", Confidence: 99, Timestamp: "2024-13-01"},
	}

	got := DailyAverages(records)

	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-01", got[0].Date)
	assert.InDelta(t, 40.0, got[0].Average, 1e-9)
	assert.Equal(t, 1, got[0].Samples)
	assert.Equal(t, "2024-03-02", got[1].Date)
	assert.InDelta(t, 70.0, got[1].Average, 1e-9)
	assert.Equal(t, 2, got[1].Samples)
}

func TestLocalitySeries(t *testing.T) {
	summaries, _ := Aggregate([]models.Record{
		rec("Belgaum", "Plastic", 10),
		rec("Belgaum", "Plastic", 10),
		rec("Belgaum", "Organic", 11),
		rec("Hubli", "Metal", 50),
	})

	bars, donuts := LocalitySeries(summaries)

	assert.Equal(t, []string{"Belgaum", "Hubli"}, bars.Labels)
	assert.Equal(t, []float64{10.33, 50}, bars.Values)
	require.Contains(t, donuts, "Belgaum")
	assert.Equal(t, []string{"Plastic", "Organic"}, donuts["Belgaum"].Labels)
	assert.Equal(t, []float64{10, 11}, donuts["Belgaum"].Values)
	assert.Equal(t, []string{"Metal"}, donuts["Hubli"].Labels)
}

func TestAlerts(t *testing.T) {
	summaries, _ := Aggregate([]models.Record{
		rec("Hubli", "Plastic", 95),
		rec("Belgaum", "Plastic", 85),
		rec("Dharwad", "Plastic", 86),
	})

	got := Alerts(summaries)

	require.Len(t, got, 2)
	assert.Equal(t, "Hubli", got[0].Locality)
	assert.Equal(t, models.AlertLevelSevere, got[0].Level)
	assert.Equal(t, "Hubli bin is full. Notify municipal team.", got[0].Message)
	assert.Equal(t, "Dharwad", got[1].Locality)
	assert.Equal(t, models.AlertLevelCritical, got[1].Level)
	assert.Empty(t, Alerts(nil))
}

func TestMarkers(t *testing.T) {
	records := []models.Record{
		{Locality: "Hubli", WasteType: "Plastic", Confidence: 95, Latitude: ptr(15.36), Longitude: ptr(75.12)},
		{Locality: "Hubli", WasteType: "Organic", Confidence: 10},
		{Locality: "", WasteType: "", Confidence: 20, Latitude: ptr(15.85), Longitude: ptr(74.5)},
	}
	summaries, _ := Aggregate(records)

	got := Markers(records, summaries)

	require.Len(t, got, 2)
	assert.Equal(t, "Hubli", got[0].Locality)
	assert.Equal(t, 15.36, got[0].Latitude)
	assert.Equal(t, 75.12, got[0].Longitude)
	assert.Equal(t, models.ClassificationWarning, got[0].Classification)
	assert.Equal(t, UnknownLocality, got[1].Locality)
	assert.Equal(t, UnknownWasteType, got[1].WasteType)
	assert.Equal(t, models.ClassificationOK, got[1].Classification)
}

func TestBuildDashboard(t *testing.T) {
	runID := uuid.New()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := NormalizeAll([]models.RawRecord{
		{Locality: "Belgaum", WasteType: "Plastic", Confidence: "90", Timestamp: "2024-03-01T10:00:00Z", Lat: "15.85", Lng: "74.50"},
		{Locality: "Belgaum", WasteType: "Organic", Confidence: "80", Timestamp: "2024-03-01T11:00:00Z"},
		{Locality: "Hubli", WasteType: "Plastic", Confidence: "92", Timestamp: "2024-03-02T10:00:00Z"},
	})

	got := BuildDashboard(runID, now, records)

	require.NotNil(t, got)
	assert.Equal(t, runID, got.RunID)
	assert.Equal(t, now, got.GeneratedAt)
	require.Len(t, got.Localities, 2)
	assert.Equal(t, "Hubli", got.Global.MostFilled.Locality)
	assert.Equal(t, 1, got.Global.CriticalCount)
	assert.Equal(t, 1, got.Global.SevereCount)
	assert.Equal(t, 1, got.Global.WarningCount)
	assert.Equal(t, []string{"Belgaum", "Hubli"}, got.LocalityBars.Labels)
	assert.Len(t, got.Donuts, 2)
	assert.Equal(t, "Plastic", got.WasteTypes.Dominant)
	assert.Len(t, got.Daily, 2)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "Hubli", got.Alerts[0].Locality)
	require.Len(t, got.Markers, 1)
	assert.Equal(t, models.ClassificationWarning, got.Markers[0].Classification)
}

func TestBuildDashboard_Empty(t *testing.T) {
	got := BuildDashboard(uuid.New(), time.Now(), nil)

	assert.Empty(t, got.Localities)
	assert.Nil(t, got.Global.MostFilled)
	assert.Empty(t, got.LocalityBars.Labels)
	assert.Empty(t, got.Daily)
	assert.Empty(t, got.Alerts)
	assert.Empty(t, got.Markers)
}
