package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/kwheeler7/license_seats/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	query := `
	SELECT id, username, display_name, active, blocked
	FROM users
	WHERE id = $1
	`

	var user domain.User
	var displayName sql.NullString

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&displayName,
		&user.Active,
		&user.Blocked,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}

		return nil, err
	}

	if displayName.Valid {
		user.DisplayName = displayName.String
	}

	return &user, nil
}
