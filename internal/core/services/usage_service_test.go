package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kwheeler7/license_seats/internal/core/domain"
	"github.com/kwheeler7/license_seats/internal/core/ports/mocks"
	"github.com/kwheeler7/license_seats/internal/core/services"
)

func TestComputeUsage_NormalBand(t *testing.T) {
	usageRepo := mocks.NewUsageRepository(t)
	notifier := mocks.NewNotifier(t)
	db, redisMock := redismock.NewClientMock()

	service := services.NewUsageService(usageRepo, notifier, db, domain.DefaultThresholds(), newTestLogger())

	ctx := context.Background()
	counts := domain.UsageCounts{SeatsInUse: 4, TotalLicenses: 12, FreeTrialCount: 1}

	usageRepo.On("CountUsage", ctx).Return(counts, nil)

	expected := domain.NewSeatUsage(counts, 10, domain.DefaultThresholds())
	data, _ := json.Marshal(expected)

	key := fmt.Sprintf("seatusage:%d", 10)
	redisMock.ExpectGet(key).RedisNil()
	redisMock.ExpectSet(key, data, 30*time.Second).SetVal("OK")

	usage, err := service.ComputeUsage(ctx, 10)

	assert.NoError(t, err)
	if assert.NotNil(t, usage) {
		assert.Equal(t, 4, usage.SeatsInUse)
		assert.Equal(t, 12, usage.TotalLicenses)
		assert.Equal(t, domain.UsageNormal, usage.Band)
	}

	if err := redisMock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestComputeUsage_CriticalBandPublishesThresholdEvent(t *testing.T) {
	usageRepo := mocks.NewUsageRepository(t)
	notifier := mocks.NewNotifier(t)
	db, redisMock := redismock.NewClientMock()

	service := services.NewUsageService(usageRepo, notifier, db, domain.DefaultThresholds(), newTestLogger())

	ctx := context.Background()
	counts := domain.UsageCounts{SeatsInUse: 10, TotalLicenses: 10}

	usageRepo.On("CountUsage", ctx).Return(counts, nil)
	notifier.On("UsageThresholdCrossed", ctx, mock.MatchedBy(func(u domain.SeatUsage) bool {
		return u.Band == domain.UsageCritical && u.SeatsInUse == 10
	})).Return(nil).Once()

	key := fmt.Sprintf("seatusage:%d", 10)
	redisMock.ExpectGet(key).RedisNil()
	redisMock.Regexp().ExpectSet(key, `.*`, 30*time.Second).SetVal("OK")

	usage, err := service.ComputeUsage(ctx, 10)

	assert.NoError(t, err)
	if assert.NotNil(t, usage) {
		assert.Equal(t, domain.UsageCritical, usage.Band)
	}
}

func TestComputeUsage_ServesCachedReport(t *testing.T) {
	usageRepo := mocks.NewUsageRepository(t)
	notifier := mocks.NewNotifier(t)
	db, redisMock := redismock.NewClientMock()

	service := services.NewUsageService(usageRepo, notifier, db, domain.DefaultThresholds(), newTestLogger())

	cached := domain.NewSeatUsage(domain.UsageCounts{SeatsInUse: 6, TotalLicenses: 9}, 10, domain.DefaultThresholds())
	data, _ := json.Marshal(cached)

	key := fmt.Sprintf("seatusage:%d", 10)
	redisMock.ExpectGet(key).SetVal(string(data))

	usage, err := service.ComputeUsage(context.Background(), 10)

	assert.NoError(t, err)
	if assert.NotNil(t, usage) {
		assert.Equal(t, 6, usage.SeatsInUse)
	}

	// The aggregate query must not run on a cache hit.
	usageRepo.AssertNotCalled(t, "CountUsage", mock.Anything)

	// The gauge follows the report even when it was served from cache.
	assert.Equal(t, float64(6), gaugeValue(t, "license_seats_in_use"))
}

func gaugeValue(t *testing.T, name string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}

	t.Fatalf("gauge %s not registered", name)
	return 0
}

func TestComputeUsage_RepositoryFailure(t *testing.T) {
	usageRepo := mocks.NewUsageRepository(t)
	notifier := mocks.NewNotifier(t)
	db, redisMock := redismock.NewClientMock()

	service := services.NewUsageService(usageRepo, notifier, db, domain.DefaultThresholds(), newTestLogger())

	ctx := context.Background()

	key := fmt.Sprintf("seatusage:%d", 10)
	redisMock.ExpectGet(key).RedisNil()
	usageRepo.On("CountUsage", ctx).Return(domain.UsageCounts{}, assert.AnError)

	usage, err := service.ComputeUsage(ctx, 10)

	assert.Error(t, err)
	assert.Nil(t, usage)
}
