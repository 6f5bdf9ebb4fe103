package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/viper"

	"github.com/Badsnus/club-directory/cmd/server"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/middlewares"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/response"
	"github.com/Badsnus/club-directory/internal/adapters/database/postgres"
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/service"
	"github.com/Badsnus/club-directory/pkg/logger/types"
)

type adminService interface {
	Stats(ctx context.Context, actor *entity.User) (dto.Stats, error)
	Users(ctx context.Context, actor *entity.User) ([]dto.UserRow, error)
}

type clubService interface {
	List(ctx context.Context, user *entity.User, query string) ([]entity.Club, error)
	ToggleActive(ctx context.Context, user *entity.User, id string) (*entity.Club, error)
	Delete(ctx context.Context, user *entity.User, id string) error
}

type userService interface {
	ToggleClubLeader(ctx context.Context, actor *entity.User, id string) (*entity.User, error)
}

type Handler struct {
	logger       *types.Logger
	adminService adminService
	clubService  clubService
	userService  userService
}

func New(s *server.Server) *Handler {
	clubStorage := postgres.NewClubStorage(s.DB)
	userStorage := postgres.NewUserStorage(s.DB)
	return &Handler{
		logger:       s.Logger,
		adminService: service.NewAdminService(clubStorage, userStorage),
		clubService:  service.NewClubService(clubStorage, s.Notify),
		userService: service.NewUserService(
			userStorage,
			s.Mailer,
			viper.GetStringSlice("settings.admin-emails"),
		),
	}
}

func (h Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context(), middlewares.User(r.Context()))
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.Success(w, http.StatusOK, map[string]any{"stats": stats})
}

// Clubs lists every club, hidden ones included, filtered by ?q= on name or
// owner email.
func (h Handler) Clubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubService.List(r.Context(), middlewares.User(r.Context()), r.URL.Query().Get("q"))
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	if clubs == nil {
		clubs = []entity.Club{}
	}
	response.Success(w, http.StatusOK, map[string]any{"clubs": clubs})
}

func (h Handler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	user := middlewares.User(r.Context())
	club, err := h.clubService.ToggleActive(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	h.logger.Infof("(admin: %s) set club %s active=%t", user.Email, club.ID, club.IsActive)
	response.Success(w, http.StatusOK, map[string]any{"club": club})
}

func (h Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	user := middlewares.User(r.Context())
	id := chi.URLParam(r, "id")
	if err := h.clubService.Delete(r.Context(), user, id); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	h.logger.Infof("(admin: %s) deleted club %s", user.Email, id)
	response.Success(w, http.StatusOK, nil)
}

func (h Handler) Users(w http.ResponseWriter, r *http.Request) {
	rows, err := h.adminService.Users(r.Context(), middlewares.User(r.Context()))
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.Success(w, http.StatusOK, map[string]any{"users": rows})
}

func (h Handler) ToggleLeader(w http.ResponseWriter, r *http.Request) {
	actor := middlewares.User(r.Context())
	user, err := h.userService.ToggleClubLeader(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	h.logger.Infof("(admin: %s) set %s club leader=%t", actor.Email, user.Email, user.IsClubLeader)
	response.Success(w, http.StatusOK, map[string]any{"user": user})
}

// Setup registers the dashboard routes; r must already require an admin.
// The services check the role again.
func (h Handler) Setup(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", h.Stats)
		r.Get("/clubs", h.Clubs)
		r.Post("/clubs/{id}/toggle-active", h.ToggleActive)
		r.Delete("/clubs/{id}", h.DeleteClub)
		r.Get("/users", h.Users)
		r.Post("/users/{id}/toggle-leader", h.ToggleLeader)
	})
}
