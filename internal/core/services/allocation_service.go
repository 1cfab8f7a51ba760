package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kwheeler7/license_seats/internal/core/domain"
	"github.com/kwheeler7/license_seats/internal/core/ports"
	"github.com/kwheeler7/license_seats/internal/observability/metrics"
)

type AssignLicenseRequest struct {
	LicenseKey string `json:"license_key"`
	OwnerID    string `json:"owner_id,omitempty"`
	Override   bool   `json:"override"`
}

type AssignLicenseResponse struct {
	LicenseKey string `json:"license_key"`
	OwnerKind  string `json:"owner_kind"`
	AssignedAt string `json:"assigned_at"`
}

type RedeemGiftRequest struct {
	GiftKey string `json:"gift_key"`
	OwnerID string `json:"owner_id"`
}

type RedeemGiftResponse struct {
	GiftKey    string `json:"gift_key"`
	RedeemedAt string `json:"redeemed_at"`
}

// AllocationService orchestrates seat assignment: eligibility, existence
// and capacity checks first, then holder resolution, identity stamping and
// the serializable commit, then fire-and-forget notification.
type AllocationService struct {
	licenseRepo ports.LicenseRepository
	giftRepo    ports.GiftRepository
	userRepo    ports.UserRepository
	usageRepo   ports.UsageRepository
	notifier    ports.Notifier
	cache       *redis.Client
	maxSeats    int
	logger      *slog.Logger
}

func NewAllocationService(
	licenseRepo ports.LicenseRepository,
	giftRepo ports.GiftRepository,
	userRepo ports.UserRepository,
	usageRepo ports.UsageRepository,
	notifier ports.Notifier,
	cache *redis.Client,
	maxSeats int,
	logger *slog.Logger,
) *AllocationService {
	return &AllocationService{
		licenseRepo: licenseRepo,
		giftRepo:    giftRepo,
		userRepo:    userRepo,
		usageRepo:   usageRepo,
		notifier:    notifier,
		cache:       cache,
		maxSeats:    maxSeats,
		logger:      logger,
	}
}

// AssignLicense assigns the license identified by key to the candidate
// owner. An empty owner id releases the seat back to the anonymous pool.
// When the license is held elsewhere or no seat is free, the request is
// rejected with an UnavailableError unless Override is set, in which case
// the prior holder is evicted inside the commit transaction.
func (s *AllocationService) AssignLicense(ctx context.Context, req AssignLicenseRequest) (*AssignLicenseResponse, error) {
	start := time.Now()

	owner, err := s.resolveOwner(ctx, req.OwnerID)
	if err != nil {
		metrics.ObserveAllocation(outcomeFor(err), time.Since(start))
		return nil, err
	}

	license, err := s.licenseRepo.GetByKey(ctx, req.LicenseKey)
	if err != nil {
		metrics.ObserveAllocation(outcomeFor(err), time.Since(start))
		return nil, err
	}

	if !license.Active {
		metrics.ObserveAllocation("ineligible", time.Since(start))
		return nil, fmt.Errorf("%w: license %s is not active", domain.ErrIneligibleOwner, license.Key)
	}

	if !req.Override {
		if err := s.validateTransfer(ctx, license, owner); err != nil {
			metrics.ObserveAllocation(outcomeFor(err), time.Since(start))
			return nil, err
		}
	}

	var priorUserID *uuid.UUID
	if license.UserID != nil {
		prior := *license.UserID
		priorUserID = &prior
	}

	holder := resolveHolder(owner, s.notifier, s.logger)
	currentVersion := license.Version

	// A nil owner releases the seat. The anonymous holder stamps no
	// identity of its own, so the prior identity is cleared here.
	if owner == nil {
		license.UserID = nil
		license.ComputerID = nil
	}

	holder.ApplyTo(license)

	license, err = holder.HandleAssignment(ctx, license, req.Override)
	if err != nil {
		metrics.ObserveAllocation("error", time.Since(start))
		return nil, fmt.Errorf("assignment handling failed for license %s: %w", req.LicenseKey, err)
	}

	err = s.licenseRepo.Assign(ctx, ports.AssignParams{
		License:        license,
		MaxSeats:       s.maxSeats,
		Override:       req.Override,
		CurrentVersion: currentVersion,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatLimitReached):
			// The recount inside the transaction lost the capacity race.
			metrics.ObserveAllocation("unavailable", time.Since(start))
			return nil, &domain.UnavailableError{Impact: domain.AssignmentImpact{UserLicense: owner != nil}}
		case errors.Is(err, domain.ErrAssignmentConflict):
			metrics.ObserveAllocation("conflict", time.Since(start))
			return nil, err
		default:
			s.logger.Error("license assignment commit failed",
				slog.String("license_key", req.LicenseKey),
				slog.String("owner_id", req.OwnerID),
				slog.Bool("override", req.Override),
				slog.String("error", err.Error()),
			)
			metrics.ObserveAllocation("error", time.Since(start))
			return nil, fmt.Errorf("failed to assign license %s: %w", req.LicenseKey, err)
		}
	}

	s.invalidateUsageCache(ctx)

	// Post-commit fan-out: once for the new holder, once for an evicted
	// prior holder when the seat actually changed hands.
	holder.NotifyOfChange(ctx, license)
	s.notifyPriorHolder(ctx, license, priorUserID, owner)

	metrics.ObserveAllocation("assigned", time.Since(start))

	assignedAt := time.Now().UTC()
	if license.AssignedAt != nil {
		assignedAt = *license.AssignedAt
	}

	return &AssignLicenseResponse{
		LicenseKey: license.Key,
		OwnerKind:  string(license.OwnerKind()),
		AssignedAt: assignedAt.Format(time.RFC3339),
	}, nil
}

// RedeemGift stamps the recipient onto a gift license. Gifts bypass the
// seat capacity check and the change-notification fan-out.
func (s *AllocationService) RedeemGift(ctx context.Context, req RedeemGiftRequest) (*RedeemGiftResponse, error) {
	if req.OwnerID == "" {
		return nil, errors.New("invalid owner id")
	}

	owner, err := s.resolveOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	gift, err := s.giftRepo.GetByKey(ctx, req.GiftKey)
	if err != nil {
		return nil, err
	}

	if gift.Redeemed() && !(owner != nil && *gift.UserID == owner.ID) {
		return nil, fmt.Errorf("%w: gift %s is already redeemed", domain.ErrGiftAlreadyRedeemed, gift.Key)
	}

	holder := resolveHolder(owner, s.notifier, s.logger)
	holder.ApplyToGift(gift)

	if err := s.giftRepo.Redeem(ctx, gift); err != nil {
		if errors.Is(err, domain.ErrAssignmentConflict) {
			return nil, err
		}

		s.logger.Error("gift redemption commit failed",
			slog.String("gift_key", req.GiftKey),
			slog.String("owner_id", req.OwnerID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to redeem gift %s: %w", req.GiftKey, err)
	}

	redeemedAt := time.Now().UTC()
	if gift.RedeemedAt != nil {
		redeemedAt = *gift.RedeemedAt
	}

	return &RedeemGiftResponse{
		GiftKey:    gift.Key,
		RedeemedAt: redeemedAt.Format(time.RFC3339),
	}, nil
}

func (s *AllocationService) resolveOwner(ctx context.Context, ownerID string) (*domain.User, error) {
	if ownerID == "" {
		return nil, nil
	}

	id, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, errors.New("invalid owner id")
	}

	owner, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !owner.Eligible() {
		return nil, fmt.Errorf("%w: user %s is blocked or inactive", domain.ErrIneligibleOwner, owner.Name())
	}

	return owner, nil
}

// validateTransfer decides whether the assignment needs explicit approval.
// Anonymous licenses move freely as long as a seat is spare; moves within
// the same user and evictions of holders with no dependent computers go
// through without a prompt. Everything else is rejected with the impact
// context the caller needs for an override decision.
func (s *AllocationService) validateTransfer(ctx context.Context, license *domain.License, candidate *domain.User) error {
	if license.Anonymous() {
		// Only a concrete owner would newly consume the seat; an
		// anonymous candidate leaves consumption untouched.
		if candidate == nil {
			return nil
		}

		counts, err := s.usageRepo.CountUsage(ctx)
		if err != nil {
			return fmt.Errorf("failed to count seat usage: %w", err)
		}

		if counts.SeatsInUse+1 > s.maxSeats {
			return &domain.UnavailableError{Impact: domain.AssignmentImpact{UserLicense: candidate != nil}}
		}

		return nil
	}

	if candidate != nil && license.HeldBy(candidate.ID) {
		return nil
	}

	if license.IsUserLicense() {
		impact, err := s.usageRepo.AssignmentImpact(ctx, *license.UserID)
		if err != nil {
			return fmt.Errorf("failed to load assignment impact: %w", err)
		}

		if impact.ComputerCount == 0 {
			return nil
		}

		impact.UserLicense = true
		return &domain.UnavailableError{Impact: impact}
	}

	// Computer-owned: the seat follows the machine, so eviction always
	// affects exactly that one computer's archive.
	impact, err := s.usageRepo.ComputerImpact(ctx, *license.ComputerID)
	if err != nil {
		return fmt.Errorf("failed to load computer impact: %w", err)
	}

	if impact.ComputerCount == 0 {
		return nil
	}

	impact.UserLicense = false
	return &domain.UnavailableError{Impact: impact}
}

func (s *AllocationService) notifyPriorHolder(ctx context.Context, license *domain.License, priorUserID *uuid.UUID, owner *domain.User) {
	if priorUserID == nil {
		return
	}

	if owner != nil && *priorUserID == owner.ID {
		return
	}

	prior, err := s.userRepo.GetByID(ctx, *priorUserID)
	if err != nil {
		s.logger.Warn("could not notify evicted license holder",
			slog.String("license_key", license.Key),
			slog.String("user_id", priorUserID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	resolveHolder(prior, s.notifier, s.logger).NotifyOfChange(ctx, license)
}

func (s *AllocationService) invalidateUsageCache(ctx context.Context) {
	if err := s.cache.Del(ctx, usageCacheKey(s.maxSeats)).Err(); err != nil {
		s.logger.Warn("failed to invalidate usage cache", slog.String("error", err.Error()))
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrIneligibleOwner):
		return "ineligible"
	case errors.Is(err, domain.ErrLicenseNotFound), errors.Is(err, domain.ErrGiftNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrLicenseUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
