package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/entity"
)

type UserStorage struct {
	db *gorm.DB
}

func NewUserStorage(db *gorm.DB) *UserStorage {
	return &UserStorage{
		db: db,
	}
}

// Create is a function that creates a new user in the database.
func (s *UserStorage) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.db.WithContext(ctx).Create(user).Error
	return user, err
}

// Get is a function that gets a user from the database by id.
func (s *UserStorage) Get(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, errorz.ErrNotFound
	}
	var user entity.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// GetByEmail is a function that gets a user from the database by email.
func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// List is a function that gets all users from the database in sortKey order.
func (s *UserStorage) List(ctx context.Context, sortKey string) ([]entity.User, error) {
	order, err := Order(sortKey)
	if err != nil {
		return nil, err
	}
	query := s.db.WithContext(ctx)
	if order != "" {
		query = query.Order(order)
	}
	var users []entity.User
	err = query.Find(&users).Error
	return users, err
}

// Update is a function that updates an existing user in the database.
func (s *UserStorage) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	if !validID(user.ID) {
		return nil, errorz.ErrNotFound
	}
	res := s.db.WithContext(ctx).
		Model(user).
		Select("*").
		Omit("id", "created_at").
		Updates(user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errorz.ErrNotFound
	}
	return user, nil
}
