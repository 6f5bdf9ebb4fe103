package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, sortKey string) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type leaderMailer interface {
	SendLeaderStatus(to string, name string, approved bool)
}

type UserService struct {
	storage     UserStorage
	mailer      leaderMailer
	adminEmails []string
}

// NewUserService creates the service. Users signing in with one of
// adminEmails get the admin role.
func NewUserService(storage UserStorage, mailer leaderMailer, adminEmails []string) *UserService {
	normalized := make([]string, 0, len(adminEmails))
	for _, email := range adminEmails {
		normalized = append(normalized, NormalizeEmail(email))
	}
	return &UserService{
		storage:     storage,
		mailer:      mailer,
		adminEmails: normalized,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignIn returns the user with email, creating it on first sign-in.
func (s *UserService) SignIn(ctx context.Context, email string, fullName string) (*entity.User, error) {
	email = NormalizeEmail(email)
	isAdmin := slices.Contains(s.adminEmails, email)

	user, err := s.storage.GetByEmail(ctx, email)
	if errors.Is(err, errorz.ErrNotFound) {
		role := entity.RoleUser
		if isAdmin {
			role = entity.RoleAdmin
		}
		return s.storage.Create(ctx, &entity.User{
			Email:    email,
			FullName: strings.TrimSpace(fullName),
			Role:     role,
		})
	}
	if err != nil {
		return nil, err
	}

	changed := false
	if isAdmin && user.Role != entity.RoleAdmin {
		user.Role = entity.RoleAdmin
		changed = true
	}
	if user.FullName == "" && strings.TrimSpace(fullName) != "" {
		user.FullName = strings.TrimSpace(fullName)
		changed = true
	}
	if changed {
		return s.storage.Update(ctx, user)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.storage.Get(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.storage.GetByEmail(ctx, NormalizeEmail(email))
}

func (s *UserService) List(ctx context.Context, sortKey string) ([]entity.User, error) {
	return s.storage.List(ctx, sortKey)
}

// ToggleClubLeader grants or revokes club leader approval. Admins already
// have every leader capability, so the flag does not apply to them.
func (s *UserService) ToggleClubLeader(ctx context.Context, actor *entity.User, id string) (*entity.User, error) {
	if !policy.CanManageUsers(actor) {
		return nil, errorz.ErrForbidden
	}
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return nil, errorz.ErrNotApplicable
	}

	user.IsClubLeader = !user.IsClubLeader
	user, err = s.storage.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		s.mailer.SendLeaderStatus(user.Email, user.FullName, user.IsClubLeader)
	}
	return user, nil
}
