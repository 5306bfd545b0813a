package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
)

const (
	insertUserSQL = `INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash`
	getUserByIDSQL = `SELECT id, username, email, password_hash
		FROM users WHERE id = $1`
	getUserByUsernameSQL = `SELECT id, username, email, password_hash
		FROM users WHERE username = $1`
	getUserByUsernameOrEmailSQL = `SELECT id, username, email, password_hash
		FROM users WHERE username = $1 OR email = $2`
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, insertUserSQL, username, email, passwordHash)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, getUserByIDSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, getUserByUsernameSQL, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, getUserByUsernameOrEmailSQL, username, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash); err != nil {
		return nil, err
	}
	return &u, nil
}

// Ensure UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)
