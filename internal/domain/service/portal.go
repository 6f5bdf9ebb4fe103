package service

import (
	"context"

	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
)

type portalClubService interface {
	GetByOwner(ctx context.Context, email string) (*entity.Club, error)
}

type PortalService struct {
	clubService portalClubService
}

func NewPortalService(clubService portalClubService) *PortalService {
	return &PortalService{
		clubService: clubService,
	}
}

// Landing resolves which portal state user sees along with their club.
func (s *PortalService) Landing(ctx context.Context, user *entity.User) (dto.Portal, error) {
	var club *entity.Club
	if user != nil {
		var err error
		club, err = s.clubService.GetByOwner(ctx, user.Email)
		if err != nil {
			return dto.Portal{}, err
		}
	}
	return dto.Portal{
		View: policy.ResolveLandingView(user, club),
		User: user,
		Club: club,
	}, nil
}
