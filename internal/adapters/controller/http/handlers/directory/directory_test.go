package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/middlewares"
	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/pkg/logger"
)

type fakeClubs struct {
	clubs       []entity.Club
	gotQuery    string
	gotCategory entity.Category
}

func (f *fakeClubs) Directory(_ context.Context, query string, category entity.Category) ([]entity.Club, error) {
	f.gotQuery, f.gotCategory = query, category
	var out []entity.Club
	for _, c := range f.clubs {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClubs) Get(_ context.Context, id string) (*entity.Club, error) {
	for i := range f.clubs {
		if f.clubs[i].ID == id {
			return &f.clubs[i], nil
		}
	}
	return nil, errorz.ErrNotFound
}

type fakeImages struct {
	gotSize int
}

func (f *fakeImages) ClubQR(_ context.Context, id string) ([]byte, error) {
	if id == "missing" {
		return nil, errorz.ErrNotFound
	}
	return []byte("qr"), nil
}

func (f *fakeImages) Placeholder(_ context.Context, _ string, size int) ([]byte, error) {
	f.gotSize = size
	return []byte("logo"), nil
}

func newRouter(clubs *fakeClubs, images *fakeImages, user *entity.User) http.Handler {
	h := Handler{logger: logger.Nop(), clubService: clubs, imageService: images}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middlewares.WithUser(r.Context(), user)))
		})
	})
	h.Setup(r)
	return r
}

func get(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestDirectoryList(t *testing.T) {
	clubs := &fakeClubs{clubs: []entity.Club{
		{ID: "a", Name: "Robotics", IsActive: true},
		{ID: "b", Name: "Hidden", IsActive: false},
	}}
	router := newRouter(clubs, &fakeImages{}, nil)

	w, body := get(t, router, "/clubs?q=robot&category=Academic")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, "robot", clubs.gotQuery)
	assert.Equal(t, entity.CategoryAcademic, clubs.gotCategory)

	_, _ = get(t, router, "/clubs")
	assert.Equal(t, entity.AllCategories, clubs.gotCategory)
}

func TestDirectoryListEmptyIsArray(t *testing.T) {
	router := newRouter(&fakeClubs{}, &fakeImages{}, nil)

	w, _ := get(t, router, "/clubs")
	assert.JSONEq(t, `{"success":true,"clubs":[],"count":0}`, w.Body.String())
}

func TestProfile(t *testing.T) {
	clubs := &fakeClubs{clubs: []entity.Club{
		{ID: "b", Name: "Hidden", OwnerEmail: "owner@ucsc.edu", IsActive: false},
	}}

	t.Run("inactive club is reachable by link", func(t *testing.T) {
		w, body := get(t, newRouter(clubs, &fakeImages{}, nil), "/clubs/b")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, body["can_edit"])
	})

	t.Run("owner can edit", func(t *testing.T) {
		owner := &entity.User{Email: "owner@ucsc.edu", Role: entity.RoleUser}
		_, body := get(t, newRouter(clubs, &fakeImages{}, owner), "/clubs/b")
		assert.Equal(t, true, body["can_edit"])
	})

	t.Run("missing club", func(t *testing.T) {
		w, _ := get(t, newRouter(clubs, &fakeImages{}, nil), "/clubs/zzz")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestImages(t *testing.T) {
	images := &fakeImages{}
	router := newRouter(&fakeClubs{}, images, nil)

	w, _ := get(t, router, "/clubs/a/qr.png")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w, _ = get(t, router, "/clubs/missing/qr.png")
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, _ = get(t, router, "/clubs/a/logo.png")
	assert.Equal(t, defaultLogoSize, images.gotSize)

	_, _ = get(t, router, "/clubs/a/logo.png?size=64")
	assert.Equal(t, 64, images.gotSize)

	w, _ = get(t, router, "/clubs/a/logo.png?size=big")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategories(t *testing.T) {
	_, body := get(t, newRouter(&fakeClubs{}, &fakeImages{}, nil), "/categories")
	assert.Len(t, body["categories"], len(entity.Categories))
	assert.Equal(t, string(entity.AllCategories), body["all"])
}
