package domain

import (
	"time"

	"github.com/google/uuid"
)

type OwnerKind string

const (
	OwnerNone     OwnerKind = "NONE"
	OwnerUser     OwnerKind = "USER"
	OwnerComputer OwnerKind = "COMPUTER"
)

// License is one seat of allocatable capacity. It is either anonymous
// (unassigned) or owned by exactly one of a user or a computer.
type License struct {
	ID         uuid.UUID
	Key        string
	UserID     *uuid.UUID
	ComputerID *uuid.UUID
	Active     bool
	AssignedAt *time.Time
	Version    int
}

func (l *License) Anonymous() bool {
	return l.UserID == nil && l.ComputerID == nil
}

func (l *License) IsUserLicense() bool {
	return l.UserID != nil
}

func (l *License) OwnerKind() OwnerKind {
	switch {
	case l.UserID != nil:
		return OwnerUser
	case l.ComputerID != nil:
		return OwnerComputer
	default:
		return OwnerNone
	}
}

// HeldBy reports whether the license is already assigned to the given user.
func (l *License) HeldBy(userID uuid.UUID) bool {
	return l.UserID != nil && *l.UserID == userID
}

// GiftLicense is a seat pre-allocated for a promotional flow. Redemption
// stamps the recipient onto a dedicated identity field and skips the
// change-notification fan-out entirely.
type GiftLicense struct {
	ID         uuid.UUID
	Key        string
	UserID     *uuid.UUID
	RedeemedAt *time.Time
	Version    int
}

func (g *GiftLicense) Redeemed() bool {
	return g.UserID != nil
}
