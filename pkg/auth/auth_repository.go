package auth

import (
	"Leafia-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	AuthRepository interface {
		CreateAdmin(ctx context.Context, admin *entities.Admin) error
		GetAdminByEmail(ctx context.Context, email string) (*entities.Admin, error)
	}

	authRepository struct {
		db *gorm.DB
	}
)

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateAdmin(ctx context.Context, admin *entities.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *authRepository) GetAdminByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var admin entities.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
