package services

import (
	"context"
	"log/slog"

	"github.com/kwheeler7/license_seats/internal/core/domain"
	"github.com/kwheeler7/license_seats/internal/core/ports"
)

// LicenseHolder is the actor that owns a seat. A holder carries every
// behavior that needs to know WHO the owner is, so the allocation flow
// itself stays owner-agnostic. A holder is resolved fresh per operation
// and discarded afterwards; it owns no persistent state.
type LicenseHolder interface {
	// ApplyTo stamps the holder's identity onto the license. Idempotent.
	ApplyTo(license *domain.License)

	// ApplyToGift stamps the holder's identity onto a gift, marking it as
	// redeemed. Gifts use a dedicated identity field and must never share
	// the standard license stamping path.
	ApplyToGift(gift *domain.GiftLicense)

	// HandleAssignment is the conflict-resolution hook. The license has
	// already been stamped; the caller persists it afterwards. Owner kinds
	// with eviction policy of their own hang it here.
	HandleAssignment(ctx context.Context, license *domain.License, override bool) (*domain.License, error)

	// NotifyOfChange tells affected parties the license (potentially)
	// changed. Invoked exactly once per successful change, never on
	// failure. Publish errors are logged, never returned.
	NotifyOfChange(ctx context.Context, license *domain.License)
}

// resolveHolder selects the holder variant for a candidate owner. A nil
// owner is the anonymous holder, whose methods are total no-ops; call
// sites never null-check.
func resolveHolder(owner *domain.User, notifier ports.Notifier, logger *slog.Logger) LicenseHolder {
	if owner == nil {
		return anonymousHolder{}
	}
	return &userHolder{user: owner, notifier: notifier, logger: logger}
}

// anonymousHolder backs licenses that belong to no one. There is no
// identity to stamp and no one to notify.
type anonymousHolder struct{}

func (anonymousHolder) ApplyTo(*domain.License) {}

func (anonymousHolder) ApplyToGift(*domain.GiftLicense) {}

func (anonymousHolder) HandleAssignment(_ context.Context, license *domain.License, _ bool) (*domain.License, error) {
	return license, nil
}

func (anonymousHolder) NotifyOfChange(context.Context, *domain.License) {}

// userHolder is a user-owned seat.
type userHolder struct {
	user     *domain.User
	notifier ports.Notifier
	logger   *slog.Logger
}

func (h *userHolder) ApplyTo(license *domain.License) {
	id := h.user.ID
	license.UserID = &id
	license.ComputerID = nil
}

func (h *userHolder) ApplyToGift(gift *domain.GiftLicense) {
	id := h.user.ID
	gift.UserID = &id
}

func (h *userHolder) HandleAssignment(_ context.Context, license *domain.License, _ bool) (*domain.License, error) {
	// No extra work today. Eviction policy for user-owned seats would
	// live here.
	return license, nil
}

func (h *userHolder) NotifyOfChange(ctx context.Context, license *domain.License) {
	if err := h.notifier.LicenseChangedForUser(ctx, h.user.ID, license.Key); err != nil {
		h.logger.Warn("license change notification failed",
			slog.String("license_key", license.Key),
			slog.String("user_id", h.user.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
