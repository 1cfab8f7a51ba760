package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/kwheeler7/license_seats/internal/core/domain"
)

// AssignParams is the atomic commit of an allocation. Implementations must
// treat the capacity recheck, the eviction of the prior holder (when
// Override) and the identity stamp as one serializable unit scoped to the
// license row, guarded by CurrentVersion.
type AssignParams struct {
	License        *domain.License
	MaxSeats       int
	Override       bool
	CurrentVersion int
}

type LicenseRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.License, error)
	Assign(ctx context.Context, params AssignParams) error
}

type GiftRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.GiftLicense, error)
	Redeem(ctx context.Context, gift *domain.GiftLicense) error
}

type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type UsageRepository interface {
	CountUsage(ctx context.Context) (domain.UsageCounts, error)
	AssignmentImpact(ctx context.Context, userID uuid.UUID) (domain.AssignmentImpact, error)
	ComputerImpact(ctx context.Context, computerID uuid.UUID) (domain.AssignmentImpact, error)
}
