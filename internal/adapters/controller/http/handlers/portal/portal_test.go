package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/club-directory/internal/adapters/controller/http/handlers/middlewares"
	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
	"github.com/Badsnus/club-directory/pkg/logger"
)

// fakeClubs keeps at most one club per owner, like the real service.
type fakeClubs struct {
	byOwner map[string]*entity.Club
}

func (f *fakeClubs) Landing(_ context.Context, user *entity.User) (dto.Portal, error) {
	club := f.byOwner[user.Email]
	return dto.Portal{View: policy.ResolveLandingView(user, club), User: user, Club: club}, nil
}

func (f *fakeClubs) Create(_ context.Context, user *entity.User, form dto.ClubForm) (*entity.Club, error) {
	if !policy.CanCreateClub(user, f.byOwner[user.Email]) {
		if f.byOwner[user.Email] != nil {
			return nil, errorz.ErrClubAlreadyExists
		}
		return nil, errorz.ErrForbidden
	}
	club := &entity.Club{ID: "c-" + user.ID, OwnerEmail: user.Email, IsActive: true}
	form.Apply(club)
	f.byOwner[user.Email] = club
	return club, nil
}

func (f *fakeClubs) Update(_ context.Context, user *entity.User, id string, form dto.ClubForm) (*entity.Club, error) {
	for _, club := range f.byOwner {
		if club.ID == id {
			if !policy.CanEditClub(user, club) {
				return nil, errorz.ErrForbidden
			}
			form.Apply(club)
			return club, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (f *fakeClubs) UpdateOwn(_ context.Context, user *entity.User, form dto.ClubForm) (*entity.Club, error) {
	club := f.byOwner[user.Email]
	if club == nil {
		return nil, errorz.ErrNotFound
	}
	form.Apply(club)
	return club, nil
}

func newRouter(clubs *fakeClubs, user *entity.User) http.Handler {
	h := Handler{logger: logger.Nop(), portalService: clubs, clubService: clubs}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middlewares.WithUser(r.Context(), user)))
		})
	})
	h.Setup(r)
	return r
}

func call(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

const clubJSON = `{"name":"Robotics","description":"We build robots","contact_email":"bots@ucsc.edu"}`

func TestPortalLifecycle(t *testing.T) {
	clubs := &fakeClubs{byOwner: map[string]*entity.Club{}}
	leader := &entity.User{ID: "1", Email: "leader@ucsc.edu", Role: entity.RoleUser, IsClubLeader: true}
	router := newRouter(clubs, leader)

	_, body := call(t, router, http.MethodGet, "/portal", "")
	assert.Equal(t, string(policy.CreatePrompt), body["view"])
	assert.Nil(t, body["form"])

	code, body := call(t, router, http.MethodPost, "/portal/club", clubJSON)
	require.Equal(t, http.StatusCreated, code)
	club := body["club"].(map[string]any)
	assert.Equal(t, "leader@ucsc.edu", club["owner_email"])

	code, _ = call(t, router, http.MethodPost, "/portal/club", clubJSON)
	assert.Equal(t, http.StatusConflict, code)

	_, body = call(t, router, http.MethodGet, "/portal", "")
	assert.Equal(t, string(policy.EditView), body["view"])
	form := body["form"].(map[string]any)
	assert.Equal(t, "Robotics", form["name"])

	code, body = call(t, router, http.MethodPut, "/portal/club",
		`{"name":"Robotics Club","description":"We build robots","contact_email":"bots@ucsc.edu"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Robotics Club", body["club"].(map[string]any)["name"])
}

func TestPortalUnapproved(t *testing.T) {
	clubs := &fakeClubs{byOwner: map[string]*entity.Club{}}
	router := newRouter(clubs, &entity.User{ID: "2", Email: "plain@ucsc.edu", Role: entity.RoleUser})

	_, body := call(t, router, http.MethodGet, "/portal", "")
	assert.Equal(t, string(policy.ApprovalRequired), body["view"])

	code, _ := call(t, router, http.MethodPost, "/portal/club", clubJSON)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestUpdateClubByID(t *testing.T) {
	clubs := &fakeClubs{byOwner: map[string]*entity.Club{
		"owner@ucsc.edu": {ID: "c1", Name: "Chess", OwnerEmail: "owner@ucsc.edu", IsActive: true},
	}}

	code, _ := call(t, newRouter(clubs, &entity.User{Email: "other@ucsc.edu", Role: entity.RoleUser}),
		http.MethodPut, "/portal/clubs/c1", clubJSON)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = call(t, newRouter(clubs, &entity.User{Email: "admin@ucsc.edu", Role: entity.RoleAdmin}),
		http.MethodPut, "/portal/clubs/c1", clubJSON)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "owner@ucsc.edu", clubs.byOwner["owner@ucsc.edu"].OwnerEmail)
}
