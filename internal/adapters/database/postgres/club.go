package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Create(club).Error
	return club, err
}

func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	if !validID(id) {
		return nil, errorz.ErrNotFound
	}
	var club entity.Club
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &club, nil
}

// Update writes every editable column of club; updated_at is stamped by
// gorm. A club deleted since it was read is not found and stays deleted.
func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	if !validID(club.ID) {
		return nil, errorz.ErrNotFound
	}
	res := s.db.WithContext(ctx).
		Model(club).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(club)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errorz.ErrNotFound
	}
	return club, nil
}

// Delete soft-deletes the club, which frees its owner to create a new one.
func (s *ClubStorage) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return errorz.ErrNotFound
	}
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Club{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errorz.ErrNotFound
	}
	return nil
}

func (s *ClubStorage) List(ctx context.Context, sortKey string) ([]entity.Club, error) {
	return s.Filter(ctx, dto.ClubFilter{}, sortKey)
}

// Filter returns the clubs matching every set field of filter.
func (s *ClubStorage) Filter(ctx context.Context, filter dto.ClubFilter, sortKey string) ([]entity.Club, error) {
	order, err := Order(sortKey)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Model(&entity.Club{})
	if filter.ID != "" {
		if !validID(filter.ID) {
			return nil, nil
		}
		query = query.Where("id = ?", filter.ID)
	}
	if filter.OwnerEmail != "" {
		query = query.Where("owner_email = ?", filter.OwnerEmail)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if order != "" {
		query = query.Order(order)
	}

	var clubs []entity.Club
	err = query.Find(&clubs).Error
	return clubs, err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorz.ErrNotFound
	}
	return err
}

// validID reports whether id can be a primary key. Anything else cannot
// exist and would be rejected by postgres with a type error.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}
