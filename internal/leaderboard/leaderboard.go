// Package leaderboard ранжирует сборщиков отходов по очкам.
package leaderboard

import (
	"slices"

	"github.com/shenikar/waste_dashboard/internal/models"
)

// Entry - позиция сборщика в таблице лидеров
type Entry struct {
	Rank      int
	Collector models.Collector
}

// Rank сортирует сборщиков по убыванию очков. При равных очках сохраняется исходный порядок.
// Позиции нумеруются с 1.
func Rank(collectors []*models.Collector) []Entry {
	sorted := make([]*models.Collector, 0, len(collectors))
	for _, c := range collectors {
		if c != nil {
			sorted = append(sorted, c)
		}
	}
	slices.SortStableFunc(sorted, func(a, b *models.Collector) int {
		return b.Points - a.Points
	})

	entries := make([]Entry, len(sorted))
	for i, c := range sorted {
		entries[i] = Entry{Rank: i + 1, Collector: *c}
	}
	return entries
}
