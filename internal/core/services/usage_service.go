package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kwheeler7/license_seats/internal/core/domain"
	"github.com/kwheeler7/license_seats/internal/core/ports"
	"github.com/kwheeler7/license_seats/internal/observability/metrics"
)

const usageCacheTTL = 30 * time.Second

func usageCacheKey(maxSeats int) string {
	return fmt.Sprintf("seatusage:%d", maxSeats)
}

// UsageService computes the seat consumption report. The report is a
// snapshot, never stored; the redis entry is a short-lived read-side cache
// that allocation deletes on every committed change.
type UsageService struct {
	usageRepo  ports.UsageRepository
	notifier   ports.Notifier
	cache      *redis.Client
	thresholds domain.UsageThresholds
	logger     *slog.Logger
}

func NewUsageService(
	usageRepo ports.UsageRepository,
	notifier ports.Notifier,
	cache *redis.Client,
	thresholds domain.UsageThresholds,
	logger *slog.Logger,
) *UsageService {
	return &UsageService{
		usageRepo:  usageRepo,
		notifier:   notifier,
		cache:      cache,
		thresholds: thresholds,
		logger:     logger,
	}
}

// ComputeUsage returns current consumption against maxSeats, classified
// into a usage band. Callers must not use the result as a capacity
// guarantee; the commit path re-checks inside its own transaction.
func (s *UsageService) ComputeUsage(ctx context.Context, maxSeats int) (*domain.SeatUsage, error) {
	key := usageCacheKey(maxSeats)

	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var usage domain.SeatUsage
		if err := json.Unmarshal([]byte(cached), &usage); err == nil {
			metrics.SetSeatsInUse(usage.SeatsInUse)
			return &usage, nil
		}
	}

	counts, err := s.usageRepo.CountUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count seat usage: %w", err)
	}

	usage := domain.NewSeatUsage(counts, maxSeats, s.thresholds)

	if data, err := json.Marshal(usage); err == nil {
		if err := s.cache.Set(ctx, key, data, usageCacheTTL).Err(); err != nil {
			s.logger.Warn("failed to cache usage report", slog.String("error", err.Error()))
		}
	}

	metrics.SetSeatsInUse(usage.SeatsInUse)

	if usage.Band != domain.UsageNormal {
		if err := s.notifier.UsageThresholdCrossed(ctx, usage); err != nil {
			s.logger.Warn("usage threshold notification failed",
				slog.String("band", string(usage.Band)),
				slog.Int("seats_in_use", usage.SeatsInUse),
				slog.String("error", err.Error()),
			)
		}
	}

	return &usage, nil
}
