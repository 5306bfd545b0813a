package auth

import (
	"context"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
)

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	User        *domain.User
}

// Login authenticates a username/password pair and issues an access token.
type Login struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	codec  ports.TokenCodec
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, codec ports.TokenCodec) *Login {
	return &Login{users: users, hasher: hasher, codec: codec}
}

// Execute returns ErrInvalidCredentials for an unknown username and for a
// wrong password alike; the two cases must stay indistinguishable.
func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.codec.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        user,
	}, nil
}
