package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/pkg/placeholder"
	qr "github.com/Badsnus/club-directory/pkg/qrcode"
)

type imageClubService interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
}

// ImageService renders the generated club images: the profile share QR code
// and the placeholder logo.
type ImageService struct {
	clubService imageClubService
	qrCFG       qr.Config
	baseURL     string
}

func NewImageService(clubService imageClubService, qrCFG qr.Config, baseURL string) *ImageService {
	return &ImageService{
		clubService: clubService,
		qrCFG:       qrCFG,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

func (s *ImageService) ProfileURL(club *entity.Club) string {
	return fmt.Sprintf("%s/clubs/%s", s.baseURL, club.ID)
}

// ClubQR returns a PNG QR code linking to the club profile. Hidden clubs get
// one too, as their profile is still reachable by link.
func (s *ImageService) ClubQR(ctx context.Context, id string) ([]byte, error) {
	club, err := s.clubService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cfg := s.qrCFG
	cfg.Content = s.ProfileURL(club)
	cfg.Logo = placeholder.Image(club.Initial(), 128)
	return cfg.Generate()
}

func (s *ImageService) Placeholder(ctx context.Context, id string, size int) ([]byte, error) {
	club, err := s.clubService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return placeholder.PNG(club.Initial(), size)
}
