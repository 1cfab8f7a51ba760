package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwheeler7/license_seats/internal/core/domain"
)

func TestNewSeatUsage_Bands(t *testing.T) {
	thresholds := domain.DefaultThresholds()

	tests := []struct {
		name     string
		inUse    int
		maxSeats int
		want     domain.UsageBand
	}{
		{"empty pool", 0, 10, domain.UsageNormal},
		{"below warning", 7, 10, domain.UsageNormal},
		{"at warning", 8, 10, domain.UsageWarning},
		{"between bands", 9, 10, domain.UsageWarning},
		{"at critical", 95, 100, domain.UsageCritical},
		{"full", 10, 10, domain.UsageCritical},
		{"over max", 11, 10, domain.UsageCritical},
		{"zero max", 0, 0, domain.UsageCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := domain.NewSeatUsage(domain.UsageCounts{SeatsInUse: tt.inUse}, tt.maxSeats, thresholds)
			assert.Equal(t, tt.want, usage.Band)
		})
	}
}

func TestNewSeatUsage_CustomThresholds(t *testing.T) {
	thresholds := domain.UsageThresholds{WarningPct: 0.5, CriticalPct: 0.9}

	usage := domain.NewSeatUsage(domain.UsageCounts{SeatsInUse: 5}, 10, thresholds)
	assert.Equal(t, domain.UsageWarning, usage.Band)

	usage = domain.NewSeatUsage(domain.UsageCounts{SeatsInUse: 9}, 10, thresholds)
	assert.Equal(t, domain.UsageCritical, usage.Band)
}

func TestSeatUsage_Consumed(t *testing.T) {
	usage := domain.NewSeatUsage(domain.UsageCounts{SeatsInUse: 5}, 10, domain.DefaultThresholds())
	assert.InDelta(t, 0.5, usage.Consumed(), 0.0001)

	zero := domain.NewSeatUsage(domain.UsageCounts{SeatsInUse: 5}, 0, domain.DefaultThresholds())
	assert.Zero(t, zero.Consumed())
}

func TestLicense_OwnerKind(t *testing.T) {
	license := domain.License{}
	assert.True(t, license.Anonymous())
	assert.Equal(t, domain.OwnerNone, license.OwnerKind())
}
