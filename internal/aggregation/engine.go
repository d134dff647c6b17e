// Package aggregation превращает плоский набор показаний в сводки по локациям,
// общую статистику и данные для графиков. Пакет не выполняет ввод-вывод.
package aggregation

import (
	"math"

	"github.com/shenikar/waste_dashboard/internal/models"
)

// Пороги классификации. Не настраиваются.
const (
	WarningThreshold  = 50.0
	CriticalThreshold = 85.0
	SevereThreshold   = 90.0
)

type wasteTypeAcc struct {
	wasteType string
	sum       float64
	count     int
}

type localityGroup struct {
	locality  string
	types     []*wasteTypeAcc
	typeIndex map[string]int
	sum       float64
	count     int
}

// Aggregate группирует записи по локациям и типам отходов и считает общую статистику.
// Порядок локаций и типов совпадает с порядком их первого появления во входных данных.
func Aggregate(records []models.Record) ([]models.LocalitySummary, models.GlobalSummary) {
	groups := groupByLocality(records)

	summaries := make([]models.LocalitySummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, summarize(g))
	}
	return summaries, reduce(summaries)
}

// Classify возвращает состояние локации по ее средней уверенности
func Classify(average float64) models.Classification {
	switch {
	case average > CriticalThreshold:
		return models.ClassificationCritical
	case average > WarningThreshold:
		return models.ClassificationWarning
	default:
		return models.ClassificationOK
	}
}

// IsSevere сообщает, превышен ли самый строгий порог
func IsSevere(average float64) bool {
	return average > SevereThreshold
}

func groupByLocality(records []models.Record) []*localityGroup {
	groups := make([]*localityGroup, 0)
	index := make(map[string]int)

	for _, rec := range records {
		locality := orDefault(rec.Locality, UnknownLocality)
		i, ok := index[locality]
		if !ok {
			i = len(groups)
			index[locality] = i
			groups = append(groups, &localityGroup{
				locality:  locality,
				typeIndex: make(map[string]int),
			})
		}
		g := groups[i]

		wasteType := orDefault(rec.WasteType, UnknownWasteType)
		j, ok := g.typeIndex[wasteType]
		if !ok {
			j = len(g.types)
			g.typeIndex[wasteType] = j
			g.types = append(g.types, &wasteTypeAcc{wasteType: wasteType})
		}
		g.types[j].sum += rec.Confidence
		g.types[j].count++

		g.sum += rec.Confidence
		g.count++
	}
	return groups
}

func summarize(g *localityGroup) models.LocalitySummary {
	stats := make([]models.WasteTypeStat, len(g.types))
	for i, t := range g.types {
		stats[i] = models.WasteTypeStat{
			WasteType: t.wasteType,
			Mean:      t.sum / float64(t.count),
			Samples:   t.count,
		}
	}

	// среднее по всем записям, а не среднее средних по типам
	average := g.sum / float64(g.count)
	return models.LocalitySummary{
		Locality:       g.locality,
		WasteTypes:     stats,
		OverallAverage: average,
		RecordCount:    g.count,
		Classification: Classify(average),
		Severe:         IsSevere(average),
	}
}

func reduce(summaries []models.LocalitySummary) models.GlobalSummary {
	global := models.GlobalSummary{
		LocalityCount: len(summaries),
		MeanAverage:   math.NaN(),
	}
	if len(summaries) == 0 {
		return global
	}

	var sum float64
	for _, s := range summaries {
		global.RecordCount += s.RecordCount
		sum += s.OverallAverage

		// строгое сравнение: при равенстве остается первая локация
		if global.MostFilled == nil || s.OverallAverage > global.MostFilled.Average {
			global.MostFilled = &models.MostFilled{
				Locality: s.Locality,
				Average:  s.OverallAverage,
			}
		}

		switch s.Classification {
		case models.ClassificationWarning:
			global.WarningCount++
		case models.ClassificationCritical:
			global.CriticalCount++
		}
		if s.Severe {
			global.SevereCount++
		}
	}
	global.MeanAverage = sum / float64(len(summaries))
	return global
}
