package handlers

import (
	"net/http"

	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
	"github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/http/middleware"
)

// UsersHandler handles /users/*. Requires the auth resolver middleware.
type UsersHandler struct{}

func NewUsersHandler() *UsersHandler {
	return &UsersHandler{}
}

// MeResponse is the JSON shape for GET /users/me (no password hash).
type MeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Me returns the current user resolved from the bearer token.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusForbidden, ErrCodeForbidden, domerrors.ErrInsufficientPrivilege.Error())
		return
	}
	writeJSON(w, http.StatusOK, MeResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}
