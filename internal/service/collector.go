package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/waste_dashboard/internal/leaderboard"
	"github.com/shenikar/waste_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks

// ErrCollectorNotFound - сборщик с таким именем не найден
var ErrCollectorNotFound = errors.New("collector not found")

// CollectorRepository определяет контракт для работы с бд сборщиков
type CollectorRepository interface {
	ListCollectors(ctx context.Context) ([]*models.Collector, error)
	// GetByName возвращает nil, nil, если сборщика нет
	GetByName(ctx context.Context, name string) (*models.Collector, error)
}

// CollectorService определяет контракт таблицы лидеров
type CollectorService interface {
	Leaderboard(ctx context.Context) ([]leaderboard.Entry, error)
	GetCollector(ctx context.Context, name string) (*models.Collector, error)
}

type collectorService struct {
	repo   CollectorRepository
	logger *logrus.Logger
}

func NewCollectorService(repo CollectorRepository, logger *logrus.Logger) CollectorService {
	return &collectorService{
		repo:   repo,
		logger: logger,
	}
}

// Leaderboard возвращает сборщиков, отсортированных по очкам
func (s *collectorService) Leaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "collector",
		"method":  "Leaderboard",
	})
	log.Info("Building leaderboard")

	collectors, err := s.repo.ListCollectors(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list collectors from repository")
		return nil, fmt.Errorf("service: could not list collectors: %w", err)
	}

	entries := leaderboard.Rank(collectors)
	log.WithField("count", len(entries)).Info("Leaderboard built successfully")
	return entries, nil
}

// GetCollector возвращает профиль сборщика
func (s *collectorService) GetCollector(ctx context.Context, name string) (*models.Collector, error) {
	name = strings.TrimSpace(name)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "collector",
		"method":    "GetCollector",
		"collector": name,
	})
	log.Info("Fetching collector by name")

	collector, err := s.repo.GetByName(ctx, name)
	if err != nil {
		log.WithError(err).Error("Failed to get collector from repository")
		return nil, fmt.Errorf("service: could not get collector: %w", err)
	}
	if collector == nil {
		log.Warn("Collector not found")
		return nil, ErrCollectorNotFound
	}

	log.Info("Collector fetched successfully")
	return collector, nil
}
