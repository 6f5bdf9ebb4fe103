package directory

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/viper"

	"github.com/Badsnus/club-directory/cmd/server"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/middlewares"
	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/response"
	"github.com/Badsnus/club-directory/internal/adapters/database/postgres"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
	"github.com/Badsnus/club-directory/internal/domain/service"
	"github.com/Badsnus/club-directory/pkg/logger/types"
	qr "github.com/Badsnus/club-directory/pkg/qrcode"
)

const defaultLogoSize = 256

type clubService interface {
	Directory(ctx context.Context, query string, category entity.Category) ([]entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
}

type imageService interface {
	ClubQR(ctx context.Context, id string) ([]byte, error)
	Placeholder(ctx context.Context, id string, size int) ([]byte, error)
}

type Handler struct {
	logger       *types.Logger
	clubService  clubService
	imageService imageService
}

func New(s *server.Server) *Handler {
	clubService := service.NewClubService(postgres.NewClubStorage(s.DB), s.Notify)
	return &Handler{
		logger:       s.Logger,
		clubService:  clubService,
		imageService: service.NewImageService(clubService, qr.Directory, viper.GetString("settings.base-url")),
	}
}

// List serves the public directory: active clubs, most recently updated
// first, narrowed by ?q= and ?category=.
func (h Handler) List(w http.ResponseWriter, r *http.Request) {
	category := entity.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = entity.AllCategories
	}

	clubs, err := h.clubService.Directory(r.Context(), r.URL.Query().Get("q"), category)
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	if clubs == nil {
		clubs = []entity.Club{}
	}
	response.Success(w, http.StatusOK, map[string]any{
		"clubs": clubs,
		"count": len(clubs),
	})
}

// Profile serves a single club. Hidden clubs stay reachable by link.
func (h Handler) Profile(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.Success(w, http.StatusOK, map[string]any{
		"club":     club,
		"can_edit": policy.CanEditClub(middlewares.User(r.Context()), club),
	})
}

func (h Handler) QR(w http.ResponseWriter, r *http.Request) {
	data, err := h.imageService.ClubQR(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.PNG(w, data)
}

// Logo renders the letter placeholder shown when a club has no logo_url.
func (h Handler) Logo(w http.ResponseWriter, r *http.Request) {
	size := defaultLogoSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "size must be a number")
			return
		}
		size = parsed
	}

	data, err := h.imageService.Placeholder(r.Context(), chi.URLParam(r, "id"), size)
	if err != nil {
		response.FromError(w, r, h.logger, err)
		return
	}
	response.PNG(w, data)
}

func (h Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, http.StatusOK, map[string]any{
		"categories": entity.Categories,
		"all":        entity.AllCategories,
	})
}

func (h Handler) Setup(r chi.Router) {
	r.Get("/categories", h.Categories)
	r.Route("/clubs", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Profile)
		r.Get("/{id}/qr.png", h.QR)
		r.Get("/{id}/logo.png", h.Logo)
	})
}
