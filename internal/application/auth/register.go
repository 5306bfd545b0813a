package auth

import (
	"context"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	User *domain.User
}

// Register creates a new account if neither the username nor the email is
// already taken.
type Register struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegister(users ports.UserRepository, hasher ports.PasswordHasher) *Register {
	return &Register{users: users, hasher: hasher}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	existing, err := uc.users.GetByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrAlreadyRegistered
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.Create(ctx, input.Username, input.Email, hash)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{User: user}, nil
}
