package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/kwheeler7/license_seats/internal/core/domain"
)

type UsageRepository struct {
	db *sql.DB
}

func NewUsageRepository(db *sql.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// CountUsage reads the full aggregate in one statement so the snapshot is
// internally consistent.
func (r *UsageRepository) CountUsage(ctx context.Context) (domain.UsageCounts, error) {
	query := `
	SELECT
		count(*) FILTER (WHERE (user_id IS NOT NULL OR computer_id IS NOT NULL) AND active) AS seats_in_use,
		count(*) AS total_licenses,
		count(*) FILTER (WHERE free_trial AND active) AS free_trial_count,
		min(trial_expires_at) FILTER (WHERE free_trial AND active) AS next_free_trial_expiry
	FROM licenses
	`

	var counts domain.UsageCounts
	var nextExpiry sql.NullTime

	err := r.db.QueryRowContext(ctx, query).Scan(
		&counts.SeatsInUse,
		&counts.TotalLicenses,
		&counts.FreeTrialCount,
		&nextExpiry,
	)

	if err != nil {
		return domain.UsageCounts{}, err
	}

	if nextExpiry.Valid {
		counts.NextFreeTrialExpiry = &nextExpiry.Time
	}

	return counts, nil
}

// AssignmentImpact describes what evicting the given user's assignment
// would affect: their name plus the count and archive footprint of the
// computers backing up under their seat.
func (r *UsageRepository) AssignmentImpact(ctx context.Context, userID uuid.UUID) (domain.AssignmentImpact, error) {
	var username string
	var displayName sql.NullString

	err := r.db.QueryRowContext(ctx, `
	SELECT username, display_name
	FROM users
	WHERE id = $1
	`, userID).Scan(&username, &displayName)

	if err != nil {
		if err == sql.ErrNoRows {
			return domain.AssignmentImpact{}, domain.ErrUserNotFound
		}

		return domain.AssignmentImpact{}, err
	}

	name := username
	if displayName.Valid && displayName.String != "" {
		name = displayName.String
	}

	var count int
	var archiveBytes int64

	err = r.db.QueryRowContext(ctx, `
	SELECT count(*), coalesce(sum(archive_bytes), 0)
	FROM computer_usages
	WHERE user_id = $1
	`, userID).Scan(&count, &archiveBytes)

	if err != nil {
		return domain.AssignmentImpact{}, err
	}

	return domain.AssignmentImpact{
		UserLicense:      true,
		Name:             name,
		ArchiveSizeBytes: archiveBytes,
		ComputerCount:    count,
	}, nil
}

func (r *UsageRepository) ComputerImpact(ctx context.Context, computerID uuid.UUID) (domain.AssignmentImpact, error) {
	var name string
	var archiveBytes int64

	err := r.db.QueryRowContext(ctx, `
	SELECT computer_name, coalesce(archive_bytes, 0)
	FROM computer_usages
	WHERE computer_id = $1
	`, computerID).Scan(&name, &archiveBytes)

	if err != nil {
		if err == sql.ErrNoRows {
			// No usage row yet; the machine has nothing backed up.
			return domain.AssignmentImpact{}, nil
		}

		return domain.AssignmentImpact{}, err
	}

	return domain.AssignmentImpact{
		Name:             name,
		ArchiveSizeBytes: archiveBytes,
		ComputerCount:    1,
	}, nil
}
