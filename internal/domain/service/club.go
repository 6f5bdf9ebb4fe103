package service

import (
	"context"
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
	"github.com/Badsnus/club-directory/internal/domain/utils/search"
	"github.com/Badsnus/club-directory/internal/domain/utils/validator"
)

// DirectoryOrder is the store ordering used for every club listing.
const DirectoryOrder = "-updated_date"

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, sortKey string) ([]entity.Club, error)
	Filter(ctx context.Context, filter dto.ClubFilter, sortKey string) ([]entity.Club, error)
}

type clubNotifier interface {
	ClubCreated(club *entity.Club)
	ClubDeleted(club *entity.Club, by *entity.User)
}

type ClubService struct {
	storage   ClubStorage
	notifier  clubNotifier
	sanitizer *bluemonday.Policy
}

func NewClubService(storage ClubStorage, notifier clubNotifier) *ClubService {
	return &ClubService{
		storage:   storage,
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Directory returns the public listing: active clubs, most recently updated
// first, narrowed by query and category.
func (s *ClubService) Directory(ctx context.Context, query string, category entity.Category) ([]entity.Club, error) {
	active := true
	clubs, err := s.storage.Filter(ctx, dto.ClubFilter{IsActive: &active}, DirectoryOrder)
	if err != nil {
		return nil, err
	}

	visible := make([]entity.Club, 0, len(clubs))
	for i := range clubs {
		if policy.CanViewInDirectory(&clubs[i]) {
			visible = append(visible, clubs[i])
		}
	}
	return search.Filter(visible, query, category), nil
}

// Get looks a club up by id whatever its activation state.
func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	return s.storage.Get(ctx, id)
}

// GetByOwner returns the club owned by email, or nil if there is none.
func (s *ClubService) GetByOwner(ctx context.Context, email string) (*entity.Club, error) {
	if email == "" {
		return nil, nil
	}
	clubs, err := s.storage.Filter(ctx, dto.ClubFilter{OwnerEmail: email}, "created_date")
	if err != nil {
		return nil, err
	}
	if len(clubs) == 0 {
		return nil, nil
	}
	return &clubs[0], nil
}

func (s *ClubService) Create(ctx context.Context, user *entity.User, form dto.ClubForm) (*entity.Club, error) {
	if user == nil {
		return nil, errorz.ErrUnauthorized
	}

	existing, err := s.GetByOwner(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errorz.ErrClubAlreadyExists
	}
	if !policy.CanCreateClub(user, existing) {
		return nil, errorz.ErrForbidden
	}
	form = s.plainText(form)
	if err = validator.Struct(form); err != nil {
		return nil, err
	}

	club := &entity.Club{
		OwnerEmail: user.Email,
		IsActive:   true,
	}
	form.Apply(club)

	club, err = s.storage.Create(ctx, club)
	if err != nil {
		return nil, err
	}
	s.notifier.ClubCreated(club)
	return club, nil
}

// Update saves form over the club with the given id. Ownership and
// activation are left as they are.
func (s *ClubService) Update(ctx context.Context, user *entity.User, id string, form dto.ClubForm) (*entity.Club, error) {
	if user == nil {
		return nil, errorz.ErrUnauthorized
	}
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, user, club, form)
}

// UpdateOwn saves form over the club owned by user.
func (s *ClubService) UpdateOwn(ctx context.Context, user *entity.User, form dto.ClubForm) (*entity.Club, error) {
	if user == nil {
		return nil, errorz.ErrUnauthorized
	}
	club, err := s.GetByOwner(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, errorz.ErrNotFound
	}
	return s.update(ctx, user, club, form)
}

func (s *ClubService) update(ctx context.Context, user *entity.User, club *entity.Club, form dto.ClubForm) (*entity.Club, error) {
	if !policy.CanEditClub(user, club) {
		return nil, errorz.ErrForbidden
	}
	form = s.plainText(form)
	if err := validator.Struct(form); err != nil {
		return nil, err
	}
	form.Apply(club)
	return s.storage.Update(ctx, club)
}

func (s *ClubService) ToggleActive(ctx context.Context, user *entity.User, id string) (*entity.Club, error) {
	if !policy.CanToggleActive(user) {
		return nil, errorz.ErrForbidden
	}
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	club.IsActive = !club.IsActive
	return s.storage.Update(ctx, club)
}

// Delete removes the club; its owner goes back to having no club.
func (s *ClubService) Delete(ctx context.Context, user *entity.User, id string) error {
	if !policy.CanDeleteClub(user) {
		return errorz.ErrForbidden
	}
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.storage.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.ClubDeleted(club, user)
	return nil
}

// List is the admin table: every club, hidden ones included, filtered by
// name or owner email.
func (s *ClubService) List(ctx context.Context, user *entity.User, query string) ([]entity.Club, error) {
	if !policy.CanViewAdminDashboard(user) {
		return nil, errorz.ErrForbidden
	}
	clubs, err := s.storage.List(ctx, DirectoryOrder)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return clubs, nil
	}
	return search.FilterAdmin(clubs, query), nil
}

// plainText strips markup from the free-text fields before they are
// validated, so a name made only of tags is rejected as empty. Anything
// between angle brackets goes, and entities are decoded: "&lt;Go&gt;" is
// how a literal "<Go>" is typed.
func (s *ClubService) plainText(form dto.ClubForm) dto.ClubForm {
	for _, field := range []*string{&form.Name, &form.Description, &form.ContactName} {
		*field = html.UnescapeString(s.sanitizer.Sanitize(*field))
	}
	return form
}
