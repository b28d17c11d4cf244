package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"oksimin/internal/models/db_models"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*db_models.User, error)
	Create(ctx context.Context, user *db_models.User) (uint, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) (uint, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}
