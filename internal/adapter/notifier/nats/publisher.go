package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/kwheeler7/license_seats/internal/core/domain"
)

const (
	subjectLicenseChanged = "licenses.changed.user"
	subjectUsageThreshold = "licenses.usage.threshold"
)

// Publisher fans license events out over NATS. Downstream listeners (usage
// recalculation, UI refresh) subscribe to the subjects above.
type Publisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

func NewPublisher(natsURL string, logger *slog.Logger) (*Publisher, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("connected to NATS", slog.String("url", natsURL))

	return &Publisher{nc: nc, logger: logger}, nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}

type LicenseChangedEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	LicenseKey string    `json:"license_key"`
	Timestamp  time.Time `json:"timestamp"`
}

type UsageThresholdEvent struct {
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	Current    int       `json:"current"`
	Limit      int       `json:"limit"`
	Percentage float64   `json:"percentage"`
	Band       string    `json:"band"`
	Timestamp  time.Time `json:"timestamp"`
}

func (p *Publisher) LicenseChangedForUser(_ context.Context, userID uuid.UUID, licenseKey string) error {
	event := LicenseChangedEvent{
		Type:       "license.changed",
		UserID:     userID.String(),
		LicenseKey: licenseKey,
		Timestamp:  time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.nc.Publish(subjectLicenseChanged, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("published license change event",
		slog.String("user_id", event.UserID),
		slog.String("license_key", licenseKey),
	)

	return nil
}

func (p *Publisher) UsageThresholdCrossed(_ context.Context, usage domain.SeatUsage) error {
	event := UsageThresholdEvent{
		Type:       "usage.threshold",
		Resource:   "seats",
		Current:    usage.SeatsInUse,
		Limit:      usage.MaxSeats,
		Percentage: usage.Consumed() * 100,
		Band:       string(usage.Band),
		Timestamp:  time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.nc.Publish(subjectUsageThreshold, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Warn("published usage threshold event",
		slog.String("band", event.Band),
		slog.Int("current", event.Current),
		slog.Int("limit", event.Limit),
	)

	return nil
}
