package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIneligibleOwner is a business-rule rejection: the candidate owner or
	// the license itself fails an eligibility check. Not retryable without
	// changing the candidate.
	ErrIneligibleOwner = errors.New("owner is not eligible for a license")
	// ErrLicenseNotFound is returned when the referenced license key does not
	// exist. Adapters map it to 404 consistently.
	ErrLicenseNotFound = errors.New("license does not exist")
	ErrGiftNotFound    = errors.New("gift license does not exist")
	ErrUserNotFound    = errors.New("user does not exist")
	// ErrGiftAlreadyRedeemed guards the one-shot nature of gift seats.
	ErrGiftAlreadyRedeemed = errors.New("gift license is already redeemed")
	// ErrLicenseUnavailable is the sentinel behind UnavailableError, so
	// callers can errors.Is without caring about the impact payload.
	ErrLicenseUnavailable = errors.New("license is in use")
	// ErrAssignmentConflict means the serializable commit lost the race:
	// either the version check failed or capacity was consumed by a
	// concurrent assignment between check and commit.
	ErrAssignmentConflict = errors.New("assignment conflict: license was modified concurrently")
	// ErrSeatLimitReached is raised inside the assignment transaction when
	// the recount shows no spare capacity and no override was given.
	ErrSeatLimitReached = errors.New("seat limit reached")
)

// UnavailableError rejects an assignment that would evict an existing
// holder or overrun the seat maximum. It carries enough context for the
// caller to present an informed override decision; resubmitting the same
// request with override=true proceeds with the eviction.
type UnavailableError struct {
	Impact AssignmentImpact
}

func (e *UnavailableError) Error() string {
	if e.Impact.Name == "" {
		return fmt.Sprintf("license is unavailable: seat limit reached (%d computers affected)", e.Impact.ComputerCount)
	}
	return fmt.Sprintf("license is in use by %s (%d computers, %d archive bytes)",
		e.Impact.Name, e.Impact.ComputerCount, e.Impact.ArchiveSizeBytes)
}

func (e *UnavailableError) Unwrap() error {
	return ErrLicenseUnavailable
}
