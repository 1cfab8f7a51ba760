package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/kwheeler7/license_seats/internal/core/domain"
	"github.com/kwheeler7/license_seats/internal/core/ports"
)

type LicenseRepository struct {
	db *sql.DB
}

func NewLicenseRepository(db *sql.DB) *LicenseRepository {
	return &LicenseRepository{db: db}
}

func (r *LicenseRepository) GetByKey(ctx context.Context, key string) (*domain.License, error) {
	query := `
	SELECT id, license_key, user_id, computer_id, active, assigned_at, version
	FROM licenses
	WHERE license_key = $1
	`

	var license domain.License
	var userID, computerID sql.NullString
	var assignedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&license.ID,
		&license.Key,
		&userID,
		&computerID,
		&license.Active,
		&assignedAt,
		&license.Version,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrLicenseNotFound
		}

		return nil, err
	}

	if userID.Valid && userID.String != "" {
		uid, _ := uuid.Parse(userID.String)
		license.UserID = &uid
	}

	if computerID.Valid && computerID.String != "" {
		cid, _ := uuid.Parse(computerID.String)
		license.ComputerID = &cid
	}

	if assignedAt.Valid {
		license.AssignedAt = &assignedAt.Time
	}

	return &license, nil
}

// Assign commits the stamped license. The capacity recheck, the release of
// any other seats held by the new owner and the conditional update run in
// one serializable transaction, so two concurrent assignments can never
// both observe spare capacity and both commit.
func (r *LicenseRepository) Assign(ctx context.Context, params ports.AssignParams) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var curUserID, curComputerID sql.NullString
	var curVersion int

	err = tx.QueryRowContext(ctx, `
	SELECT user_id, computer_id, version
	FROM licenses
	WHERE id = $1
	FOR UPDATE
	`, params.License.ID).Scan(&curUserID, &curComputerID, &curVersion)

	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrLicenseNotFound
		}

		return err
	}

	if curVersion != params.CurrentVersion {
		return domain.ErrAssignmentConflict
	}

	wasAnonymous := !curUserID.Valid && !curComputerID.Valid
	consumesSeat := params.License.UserID != nil || params.License.ComputerID != nil

	if wasAnonymous && consumesSeat && !params.Override {
		var seatsInUse int
		err = tx.QueryRowContext(ctx, `
		SELECT count(*)
		FROM licenses
		WHERE (user_id IS NOT NULL OR computer_id IS NOT NULL) AND active
		`).Scan(&seatsInUse)

		if err != nil {
			return err
		}

		if seatsInUse+1 > params.MaxSeats {
			return domain.ErrSeatLimitReached
		}
	}

	// The new owner keeps exactly one seat: any other license they hold is
	// released before this one is stamped.
	if params.License.UserID != nil {
		_, err = tx.ExecContext(ctx, `
		UPDATE licenses
		SET user_id = NULL,
			assigned_at = NULL,
			version = version + 1
		WHERE user_id = $1 AND id <> $2
		`, *params.License.UserID, params.License.ID)

		if err != nil {
			return err
		}
	}

	now := time.Now()
	var assignedAt *time.Time
	if consumesSeat {
		assignedAt = &now
	}

	result, err := tx.ExecContext(ctx, `
	UPDATE licenses
	SET user_id = $1,
		computer_id = $2,
		assigned_at = $3,
		version = version + 1
	WHERE id = $4 AND version = $5
	`, nullableUUID(params.License.UserID), nullableUUID(params.License.ComputerID), assignedAt, params.License.ID, params.CurrentVersion)

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

	if err = tx.Commit(); err != nil {
		return err
	}

	params.License.AssignedAt = assignedAt
	params.License.Version = params.CurrentVersion + 1

	return nil
}

func nullableUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}

	return id.String()
}
