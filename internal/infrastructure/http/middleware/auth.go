package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/ports"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
)

// AuthResolver is the identity-resolution pipeline for protected routes:
// extract the bearer token, decode it, resolve the subject to a live user
// record and bind it to the request context. Any decode failure rejects the
// request with 401; a structurally valid token whose subject no longer exists
// rejects with 404.
type AuthResolver struct {
	codec ports.TokenCodec
	users ports.UserRepository
}

func NewAuthResolver(codec ports.TokenCodec, users ports.UserRepository) *AuthResolver {
	return &AuthResolver{codec: codec, users: users}
}

func (m *AuthResolver) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeAuthErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid authorization")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := m.codec.Decode(tokenString)
		if err != nil {
			// Expiry is surfaced for the client's benefit; signature and
			// malformation collapse into one generic answer.
			if errors.Is(err, domerrors.ErrTokenExpired) {
				writeAuthErr(w, http.StatusUnauthorized, "token_expired", "token expired")
				return
			}
			writeAuthErr(w, http.StatusUnauthorized, "invalid_token", "invalid token")
			return
		}
		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeAuthErr(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		if user == nil {
			writeAuthErr(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func writeAuthErr(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}
