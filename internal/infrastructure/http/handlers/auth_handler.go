package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/auth"
	domerrors "github.com/Maksim-Borisov7/TaskApp/internal/domain/errors"
	"github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/http/middleware"
)

type AuthHandler struct {
	register *auth.Register
	login    *auth.Login
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		validate: validator.New(),
		log:      log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"required,min=3,max=20"`
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,min=3,max=20"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	username := SanitizeUsername(body.Username)
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if username == "" || email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid username, email or password length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", username, false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		if errors.Is(err, domerrors.ErrAlreadyRegistered) {
			writeErr(w, http.StatusConflict, ErrCodeConflict, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.register", username, true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       result.User.ID,
		"username": result.User.Username,
		"email":    result.User.Email,
	})
}

// Login accepts the OAuth2 password form convention: urlencoded username and
// password fields. Any credential mismatch answers with the same generic 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid form")
		return
	}
	username := SanitizeUsername(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "", "username and password are required")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", username, false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if errors.Is(err, domerrors.ErrInvalidCredentials) {
			writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.login", username, true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": result.AccessToken,
		"token_type":   result.TokenType,
	})
}
