package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventory_management/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, hashed_password, created_at) VALUES (?, ?, ?) RETURNING id`
	selectUserByUsernameSQL = `SELECT id, username, hashed_password, created_at FROM users WHERE username = ?`
)

// Create inserts u and sets u.ID. A taken username yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertUserSQL), u.Username, u.HashedPassword, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user %q: %w", u.Username, ErrDuplicate)
		}
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// GetByUsername fetches a user by username. Returns ErrNotFound if absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, r.db.Rebind(selectUserByUsernameSQL), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}
