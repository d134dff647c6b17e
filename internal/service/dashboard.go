package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/waste_dashboard/internal/aggregation"
	"github.com/shenikar/waste_dashboard/internal/models"
	"github.com/shenikar/waste_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

// ErrNoSnapshot - ни одного набора показаний еще не загружено (или он истек)
var ErrNoSnapshot = errors.New("no dashboard snapshot available")

// SnapshotRepository определяет контракт хранилища последнего загруженного набора
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error
	// GetLatestSnapshot возвращает nil, nil, если снимка нет
	GetLatestSnapshot(ctx context.Context) (*models.Snapshot, error)
}

// DashboardService определяет контракт построения дашборда
type DashboardService interface {
	Ingest(ctx context.Context, raws []models.RawRecord) (*models.Dashboard, error)
	Latest(ctx context.Context, filter aggregation.Filter) (*models.Dashboard, error)
}

type dashboardService struct {
	repo      SnapshotRepository
	publisher webhook.AlertPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewDashboardService(repo SnapshotRepository, logger *logrus.Logger, publisher webhook.AlertPublisher) DashboardService {
	return &dashboardService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Ingest сохраняет полный набор записей как последний снимок, строит по нему дашборд
// и публикует уведомления по переполненным локациям
func (s *dashboardService) Ingest(ctx context.Context, raws []models.RawRecord) (*models.Dashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "Ingest",
		"records": len(raws),
	})
	log.Info("Ingesting record batch")

	snapshot := &models.Snapshot{
		RunID:      uuid.New(),
		IngestedAt: s.now().UTC(),
		Records:    aggregation.NormalizeAll(raws),
	}
	log = log.WithField("run_id", snapshot.RunID)

	if err := s.repo.SaveSnapshot(ctx, snapshot); err != nil {
		log.WithError(err).Error("Failed to save snapshot in repository")
		return nil, fmt.Errorf("service: could not save snapshot: %w", err)
	}

	dashboard := aggregation.BuildDashboard(snapshot.RunID, snapshot.IngestedAt, snapshot.Records)
	s.publishAlerts(ctx, log, dashboard)

	log.WithFields(logrus.Fields{
		"localities":     dashboard.Global.LocalityCount,
		"warning_count":  dashboard.Global.WarningCount,
		"critical_count": dashboard.Global.CriticalCount,
	}).Info("Dashboard built successfully")
	return dashboard, nil
}

// Latest заново агрегирует последний снимок с учетом фильтра
func (s *dashboardService) Latest(ctx context.Context, filter aggregation.Filter) (*models.Dashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "Latest",
		"localities":  filter.Localities,
		"waste_types": filter.WasteTypes,
	})
	log.Info("Fetching latest dashboard")

	snapshot, err := s.repo.GetLatestSnapshot(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get snapshot from repository")
		return nil, fmt.Errorf("service: could not get snapshot: %w", err)
	}
	if snapshot == nil {
		log.Warn("No snapshot available")
		return nil, ErrNoSnapshot
	}

	records := aggregation.FilterRecords(snapshot.Records, filter)
	dashboard := aggregation.BuildDashboard(snapshot.RunID, snapshot.IngestedAt, records)

	log.WithFields(logrus.Fields{
		"run_id":  snapshot.RunID,
		"records": len(records),
	}).Info("Dashboard rebuilt successfully")
	return dashboard, nil
}

// publishAlerts не прерывает загрузку: ошибка публикации только логируется
func (s *dashboardService) publishAlerts(ctx context.Context, log *logrus.Entry, dashboard *models.Dashboard) {
	if s.publisher == nil {
		return
	}
	for _, alert := range dashboard.Alerts {
		event := webhook.NewAlertEvent(dashboard.RunID, alert, dashboard.GeneratedAt)
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).WithField("locality", alert.Locality).Warn("Failed to publish alert event")
		}
	}
}
