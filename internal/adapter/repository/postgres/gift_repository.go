package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/kwheeler7/license_seats/internal/core/domain"
)

type GiftRepository struct {
	db *sql.DB
}

func NewGiftRepository(db *sql.DB) *GiftRepository {
	return &GiftRepository{db: db}
}

func (r *GiftRepository) GetByKey(ctx context.Context, key string) (*domain.GiftLicense, error) {
	query := `
	SELECT id, gift_key, user_id, redeemed_at, version
	FROM gift_licenses
	WHERE gift_key = $1
	`

	var gift domain.GiftLicense
	var userID sql.NullString
	var redeemedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&gift.ID,
		&gift.Key,
		&userID,
		&redeemedAt,
		&gift.Version,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrGiftNotFound
		}

		return nil, err
	}

	if userID.Valid && userID.String != "" {
		uid, _ := uuid.Parse(userID.String)
		gift.UserID = &uid
	}

	if redeemedAt.Valid {
		gift.RedeemedAt = &redeemedAt.Time
	}

	return &gift, nil
}

func (r *GiftRepository) Redeem(ctx context.Context, gift *domain.GiftLicense) error {
	now := time.Now()

	result, err := r.db.ExecContext(ctx, `
	UPDATE gift_licenses
	SET user_id = $1,
		redeemed_at = $2,
		version = version + 1
	WHERE id = $3 AND version = $4
	`, nullableUUID(gift.UserID), now, gift.ID, gift.Version)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrAssignmentConflict
	}

	gift.RedeemedAt = &now
	gift.Version++

	return nil
}
