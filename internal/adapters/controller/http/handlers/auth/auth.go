package auth

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/viper"

	"github.com/Badsnus/club-directory/cmd/server"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/middlewares"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/response"
	"github.com/Badsnus/club-directory/internal/adapters/database/postgres"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/service"
	"github.com/Badsnus/club-directory/pkg/logger/types"
)

type authService interface {
	RequestCode(ctx context.Context, email string, fullName string) error
	Verify(ctx context.Context, email string, code string) (*entity.User, error)
}

type Handler struct {
	logger      *types.Logger
	sessions    *scs.SessionManager
	authService authService
}

func New(s *server.Server) *Handler {
	userService := service.NewUserService(
		postgres.NewUserStorage(s.DB),
		s.Mailer,
		viper.GetStringSlice("settings.admin-emails"),
	)
	return &Handler{
		logger:   s.Logger,
		sessions: s.Sessions,
		authService: service.NewAuthService(
			s.Redis.Codes,
			s.Mailer,
			userService,
			viper.GetDuration("auth.code-ttl"),
		),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Login sends a one-time code to the given address.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	if err := h.authService.RequestCode(r.Context(), req.Email, req.FullName); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.Success(w, http.StatusOK, map[string]any{"message": "code sent"})
}

// Verify exchanges a code for a session.
func (h Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	user, err := h.authService.Verify(r.Context(), req.Email, req.Code)
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}

	if err = h.sessions.RenewToken(r.Context()); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	h.sessions.Put(r.Context(), middlewares.SessionKeyUserID, user.ID)
	h.logger.Infof("(user: %s) signed in", user.Email)

	response.Success(w, http.StatusOK, map[string]any{"user": user})
}

func (h Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.Success(w, http.StatusOK, nil)
}

// Me reports whether the request is authenticated and who the user is.
func (h Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := middlewares.User(r.Context())
	response.Success(w, http.StatusOK, map[string]any{
		"is_authenticated": user != nil,
		"user":             user,
	})
}

// Setup registers the auth routes. limit guards the endpoints that send mail
// or check codes.
func (h Handler) Setup(r chi.Router, limit func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.With(limit).Post("/login", h.Login)
		r.With(limit).Post("/verify", h.Verify)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})
}
