package service

import (
	"context"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
)

type adminClubStorage interface {
	List(ctx context.Context, sortKey string) ([]entity.Club, error)
}

type adminUserStorage interface {
	List(ctx context.Context, sortKey string) ([]entity.User, error)
}

type AdminService struct {
	clubStorage adminClubStorage
	userStorage adminUserStorage
}

func NewAdminService(clubStorage adminClubStorage, userStorage adminUserStorage) *AdminService {
	return &AdminService{
		clubStorage: clubStorage,
		userStorage: userStorage,
	}
}

func (s *AdminService) Stats(ctx context.Context, actor *entity.User) (dto.Stats, error) {
	if !policy.CanViewAdminDashboard(actor) {
		return dto.Stats{}, errorz.ErrForbidden
	}
	clubs, err := s.clubStorage.List(ctx, "")
	if err != nil {
		return dto.Stats{}, err
	}
	users, err := s.userStorage.List(ctx, "")
	if err != nil {
		return dto.Stats{}, err
	}

	stats := dto.Stats{
		TotalClubs: len(clubs),
		TotalUsers: len(users),
	}
	for i := range clubs {
		if clubs[i].IsActive {
			stats.ActiveClubs++
		}
	}
	for i := range users {
		if users[i].IsAdmin() {
			stats.Admins++
		}
	}
	return stats, nil
}

// Users lists every user, newest first, with the club each one owns.
func (s *AdminService) Users(ctx context.Context, actor *entity.User) ([]dto.UserRow, error) {
	if !policy.CanManageUsers(actor) {
		return nil, errorz.ErrForbidden
	}
	users, err := s.userStorage.List(ctx, "-created_date")
	if err != nil {
		return nil, err
	}
	clubs, err := s.clubStorage.List(ctx, DirectoryOrder)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]*dto.ClubRef, len(clubs))
	for _, club := range clubs {
		if _, ok := owned[club.OwnerEmail]; !ok {
			owned[club.OwnerEmail] = &dto.ClubRef{ID: club.ID, Name: club.Name}
		}
	}

	rows := make([]dto.UserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, dto.UserRow{User: user, Club: owned[user.Email]})
	}
	return rows, nil
}
