package admin

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
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
	"github.com/Badsnus/club-directory/pkg/logger"
)

type fakeDashboard struct {
	clubs []entity.Club
	users []entity.User
}

func (f *fakeDashboard) Stats(_ context.Context, actor *entity.User) (dto.Stats, error) {
	if !policy.CanViewAdminDashboard(actor) {
		return dto.Stats{}, errorz.ErrForbidden
	}
	return dto.Stats{TotalClubs: len(f.clubs), TotalUsers: len(f.users)}, nil
}

func (f *fakeDashboard) Users(_ context.Context, actor *entity.User) ([]dto.UserRow, error) {
	if !policy.CanManageUsers(actor) {
		return nil, errorz.ErrForbidden
	}
	rows := make([]dto.UserRow, 0, len(f.users))
	for _, u := range f.users {
		rows = append(rows, dto.UserRow{User: u})
	}
	return rows, nil
}

func (f *fakeDashboard) List(_ context.Context, _ *entity.User, _ string) ([]entity.Club, error) {
	return f.clubs, nil
}

func (f *fakeDashboard) ToggleActive(_ context.Context, user *entity.User, id string) (*entity.Club, error) {
	if !policy.CanToggleActive(user) {
		return nil, errorz.ErrForbidden
	}
	for i := range f.clubs {
		if f.clubs[i].ID == id {
			f.clubs[i].IsActive = !f.clubs[i].IsActive
			return &f.clubs[i], nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (f *fakeDashboard) Delete(_ context.Context, user *entity.User, id string) error {
	if !policy.CanDeleteClub(user) {
		return errorz.ErrForbidden
	}
	for i := range f.clubs {
		if f.clubs[i].ID == id {
			f.clubs = append(f.clubs[:i], f.clubs[i+1:]...)
			return nil
		}
	}
	return errorz.ErrNotFound
}

func (f *fakeDashboard) ToggleClubLeader(_ context.Context, actor *entity.User, id string) (*entity.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, errorz.ErrForbidden
	}
	for i := range f.users {
		if f.users[i].ID == id {
			if f.users[i].IsAdmin() {
				return nil, errorz.ErrNotApplicable
			}
			f.users[i].IsClubLeader = !f.users[i].IsClubLeader
			return &f.users[i], nil
		}
	}
	return nil, errorz.ErrNotFound
}

var admin = &entity.User{ID: "a", Email: "admin@ucsc.edu", Role: entity.RoleAdmin}

func newDashboard() *fakeDashboard {
	return &fakeDashboard{
		clubs: []entity.Club{{ID: "c1", Name: "Chess", IsActive: true}},
		users: []entity.User{*admin, {ID: "u1", Email: "y@ucsc.edu", Role: entity.RoleUser}},
	}
}

func newRouter(d *fakeDashboard, user *entity.User) http.Handler {
	h := Handler{logger: logger.Nop(), adminService: d, clubService: d, userService: d}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middlewares.WithUser(r.Context(), user)))
		})
	})
	h.Setup(r)
	return r
}

func call(t *testing.T, router http.Handler, method, path string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func TestAdminDashboard(t *testing.T) {
	d := newDashboard()
	router := newRouter(d, admin)

	code, body := call(t, router, http.MethodGet, "/admin/stats")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["stats"].(map[string]any)["total_clubs"])

	code, body = call(t, router, http.MethodPost, "/admin/clubs/c1/toggle-active")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["club"].(map[string]any)["is_active"])

	code, body = call(t, router, http.MethodPost, "/admin/users/u1/toggle-leader")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["user"].(map[string]any)["is_club_leader"])

	code, _ = call(t, router, http.MethodPost, "/admin/users/a/toggle-leader")
	assert.Equal(t, http.StatusConflict, code)

	code, _ = call(t, router, http.MethodDelete, "/admin/clubs/c1")
	require.Equal(t, http.StatusOK, code)
	_, body = call(t, router, http.MethodGet, "/admin/clubs")
	assert.Empty(t, body["clubs"])

	code, _ = call(t, router, http.MethodDelete, "/admin/clubs/c1")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAdminForbiddenForNonAdmins(t *testing.T) {
	router := newRouter(newDashboard(), &entity.User{ID: "u1", Email: "y@ucsc.edu", Role: entity.RoleUser, IsClubLeader: true})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/admin/stats"},
		{http.MethodGet, "/admin/users"},
		{http.MethodPost, "/admin/clubs/c1/toggle-active"},
		{http.MethodDelete, "/admin/clubs/c1"},
		{http.MethodPost, "/admin/users/u1/toggle-leader"},
	} {
		code, _ := call(t, router, tc.method, tc.path)
		assert.Equal(t, http.StatusForbidden, code, tc.path)
	}
}
