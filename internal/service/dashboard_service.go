package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
)

const dashboardCountsKey = "dashboard:counts"

type recordCounter interface {
	Count(ctx context.Context) (int, error)
}

type dashboardCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// DashboardService aggregates record counts for the admin dashboard,
// caching the result in Redis to spare four COUNT queries per page load.
type DashboardService struct {
	complaints  recordCounter
	healthCamps recordCounter
	events      recordCounter
	citizens    recordCounter
	cache       dashboardCache
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewDashboardService constructs a DashboardService instance. A nil cache
// disables caching.
func NewDashboardService(complaints, healthCamps, events, citizens recordCounter, cache dashboardCache, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &DashboardService{
		complaints:  complaints,
		healthCamps: healthCamps,
		events:      events,
		citizens:    citizens,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Counts returns the dashboard totals. The second return value reports
// whether the payload came from cache.
func (s *DashboardService) Counts(ctx context.Context) (*models.DashboardCounts, bool, error) {
	if s.cache != nil {
		payload, err := s.cache.Get(ctx, dashboardCountsKey).Result()
		if err == nil {
			var counts models.DashboardCounts
			if err := json.Unmarshal([]byte(payload), &counts); err == nil {
				return &counts, true, nil
			}
			s.logger.Warn("discarding malformed dashboard cache entry", zap.Error(err))
		} else if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	counts := &models.DashboardCounts{}
	var err error
	if counts.Complaints, err = s.complaints.Count(ctx); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count complaints")
	}
	if counts.HealthCamps, err = s.healthCamps.Count(ctx); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count health camps")
	}
	if counts.EventPermissions, err = s.events.Count(ctx); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count event permissions")
	}
	if counts.Citizens, err = s.citizens.Count(ctx); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count citizens")
	}

	if s.cache != nil {
		if payload, err := json.Marshal(counts); err == nil {
			if err := s.cache.Set(ctx, dashboardCountsKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return counts, false, nil
}
