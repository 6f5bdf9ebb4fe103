package portal

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Badsnus/club-directory/cmd/server"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/middlewares"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/response"
	"github.com/Badsnus/club-directory/internal/adapters/database/postgres"
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/service"
	"github.com/Badsnus/club-directory/pkg/logger/types"
)

type portalService interface {
	Landing(ctx context.Context, user *entity.User) (dto.Portal, error)
}

type clubService interface {
	Create(ctx context.Context, user *entity.User, form dto.ClubForm) (*entity.Club, error)
	Update(ctx context.Context, user *entity.User, id string, form dto.ClubForm) (*entity.Club, error)
	UpdateOwn(ctx context.Context, user *entity.User, form dto.ClubForm) (*entity.Club, error)
}

type Handler struct {
	logger        *types.Logger
	portalService portalService
	clubService   clubService
}

func New(s *server.Server) *Handler {
	clubService := service.NewClubService(postgres.NewClubStorage(s.DB), s.Notify)
	return &Handler{
		logger:        s.Logger,
		portalService: service.NewPortalService(clubService),
		clubService:   clubService,
	}
}

// Landing tells the client which portal screen to show. The edit view
// carries the current values as a prefilled form.
func (h Handler) Landing(w http.ResponseWriter, r *http.Request) {
	portal, err := h.portalService.Landing(r.Context(), middlewares.User(r.Context()))
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}

	data := map[string]any{
		"view": portal.View,
		"user": portal.User,
		"club": portal.Club,
	}
	if portal.Club != nil {
		data["form"] = dto.FormFromClub(portal.Club)
	}
	response.Success(w, http.StatusOK, data)
}

func (h Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var form dto.ClubForm
	if err := response.Decode(w, r, &form); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	club, err := h.clubService.Create(r.Context(), middlewares.User(r.Context()), form)
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.Success(w, http.StatusCreated, map[string]any{"club": club})
}

func (h Handler) UpdateOwnClub(w http.ResponseWriter, r *http.Request) {
	var form dto.ClubForm
	if err := response.Decode(w, r, &form); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	club, err := h.clubService.UpdateOwn(r.Context(), middlewares.User(r.Context()), form)
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.Success(w, http.StatusOK, map[string]any{"club": club})
}

// UpdateClub edits a club by id; owners and admins only.
func (h Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	var form dto.ClubForm
	if err := response.Decode(w, r, &form); err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	club, err := h.clubService.Update(r.Context(), middlewares.User(r.Context()), chi.URLParam(r, "id"), form)
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.Success(w, http.StatusOK, map[string]any{"club": club})
}

// Setup registers the portal routes; r must already require a signed-in
// user.
func (h Handler) Setup(r chi.Router) {
	r.Route("/portal", func(r chi.Router) {
		r.Get("/", h.Landing)
		r.Post("/club", h.CreateClub)
		r.Put("/club", h.UpdateOwnClub)
		r.Put("/clubs/{id}", h.UpdateClub)
	})
}
