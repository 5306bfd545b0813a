package ports

import (
	"context"

	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
)

// UserRepository defines persistence for users. Lookup methods return
// (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
}

// TaskRepository defines persistence for tasks. Every query is scoped by the
// owning user id, so a foreign task id behaves like a missing one.
type TaskRepository interface {
	Create(ctx context.Context, userID int64, title, description string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)
	GetByID(ctx context.Context, userID, taskID int64) (*domain.Task, error)
	SetDone(ctx context.Context, userID, taskID int64, done bool) error
	Delete(ctx context.Context, userID, taskID int64) error
}
