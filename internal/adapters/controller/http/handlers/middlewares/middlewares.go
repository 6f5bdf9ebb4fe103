package middlewares

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Badsnus/club-directory/cmd/server"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/response"
	"github.com/Badsnus/club-directory/internal/adapters/database/postgres"
	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
	"github.com/Badsnus/club-directory/internal/domain/service"
	"github.com/Badsnus/club-directory/pkg/logger/types"
)

// SessionKeyUserID is the session entry holding the signed-in user's id.
const SessionKeyUserID = "user_id"

type contextKey string

const contextKeyUser contextKey = "user"

type userService interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type Handler struct {
	sessions    *scs.SessionManager
	logger      *types.Logger
	userService userService
}

func New(s *server.Server) *Handler {
	return &Handler{
		sessions:    s.Sessions,
		logger:      s.Logger,
		userService: service.NewUserService(postgres.NewUserStorage(s.DB), nil, nil),
	}
}

// User returns the signed-in user, or nil for anonymous requests.
func User(ctx context.Context) *entity.User {
	user, _ := ctx.Value(contextKeyUser).(*entity.User)
	return user
}

func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}

// LoadUser puts the session's user into the request context. A session
// pointing at a missing user is treated as anonymous and cleaned up.
func (h Handler) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := h.sessions.GetString(r.Context(), SessionKeyUserID)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.userService.Get(r.Context(), id)
		if errors.Is(err, errorz.ErrNotFound) {
			h.sessions.Remove(r.Context(), SessionKeyUserID)
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			response.FromError(w, r, h.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// Authorized rejects anonymous requests with 401 and a login URL.
func (h Handler) Authorized(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if User(r.Context()) == nil {
			response.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h Handler) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := User(r.Context())
		if user == nil {
			response.Unauthorized(w)
			return
		}
		if !policy.CanViewAdminDashboard(user) {
			response.FromError(w, r, h.logger, errorz.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h Handler) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		email := "-"
		if user := User(r.Context()); user != nil {
			email = user.Email
		}
		h.logger.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"user", email,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
