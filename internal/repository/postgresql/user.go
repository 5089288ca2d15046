package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-gateway/internal/domain/user"
	"github.com/cmlabs-hris/hris-gateway/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db database.Pool
}

func NewUserRepository(db database.Pool) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// CountByEmail implements user.UserRepository.
func (r *userRepositoryImpl) CountByEmail(ctx context.Context, email string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM users WHERE email = $1`

	var count int64
	if err := q.QueryRow(ctx, query, email).Scan(&count); err != nil {
		return 0, err
	}
	return int(count), nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, status, role
		FROM users
		WHERE email = $1
	`

	return scanUser(q.QueryRow(ctx, query, email))
}

func scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Status,
		&found.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}
