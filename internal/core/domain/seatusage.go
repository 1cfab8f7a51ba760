package domain

import "time"

type UsageBand string

const (
	UsageNormal   UsageBand = "NORMAL"
	UsageWarning  UsageBand = "WARNING"
	UsageCritical UsageBand = "CRITICAL"
)

// UsageThresholds are the band cutoffs as fractions of the seat maximum.
// They are a policy parameter, not a constant.
type UsageThresholds struct {
	WarningPct  float64
	CriticalPct float64
}

func DefaultThresholds() UsageThresholds {
	return UsageThresholds{WarningPct: 0.80, CriticalPct: 0.95}
}

// UsageCounts is the raw aggregate snapshot read from storage.
type UsageCounts struct {
	SeatsInUse          int
	TotalLicenses       int
	FreeTrialCount      int
	NextFreeTrialExpiry *time.Time
}

// SeatUsage is a computed report of seat consumption against the configured
// maximum. It is recomputed per query and never persisted. The band is
// derived here so callers never re-derive classification independently.
type SeatUsage struct {
	MaxSeats            int        `json:"max_seats"`
	SeatsInUse          int        `json:"seats_in_use"`
	TotalLicenses       int        `json:"total_licenses"`
	FreeTrialCount      int        `json:"free_trial_count"`
	NextFreeTrialExpiry *time.Time `json:"next_free_trial_expiry,omitempty"`
	Band                UsageBand  `json:"band"`
}

func NewSeatUsage(counts UsageCounts, maxSeats int, t UsageThresholds) SeatUsage {
	return SeatUsage{
		MaxSeats:            maxSeats,
		SeatsInUse:          counts.SeatsInUse,
		TotalLicenses:       counts.TotalLicenses,
		FreeTrialCount:      counts.FreeTrialCount,
		NextFreeTrialExpiry: counts.NextFreeTrialExpiry,
		Band:                classify(counts.SeatsInUse, maxSeats, t),
	}
}

func (u SeatUsage) Consumed() float64 {
	if u.MaxSeats <= 0 {
		return 0
	}
	return float64(u.SeatsInUse) / float64(u.MaxSeats)
}

func classify(inUse, maxSeats int, t UsageThresholds) UsageBand {
	if maxSeats <= 0 {
		return UsageCritical
	}

	ratio := float64(inUse) / float64(maxSeats)
	switch {
	case ratio >= t.CriticalPct:
		return UsageCritical
	case ratio >= t.WarningPct:
		return UsageWarning
	default:
		return UsageNormal
	}
}
