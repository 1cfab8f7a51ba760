package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/kwheeler7/license_seats/internal/core/domain"
)

// Notifier fans out license-change signals to downstream consumers. It runs
// strictly after the allocation transaction commits; a failed publish is
// logged by the caller and never rolls anything back.
type Notifier interface {
	LicenseChangedForUser(ctx context.Context, userID uuid.UUID, licenseKey string) error
	UsageThresholdCrossed(ctx context.Context, usage domain.SeatUsage) error
}
