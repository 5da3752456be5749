package plant

import (
	"Leafia-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	PlantRepository interface {
		CreateObservation(ctx context.Context, observation *entities.PlantObservation) error
		GetObservations(ctx context.Context) ([]*entities.PlantObservation, error)
	}

	plantRepository struct {
		db *gorm.DB
	}
)

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) CreateObservation(ctx context.Context, observation *entities.PlantObservation) error {
	return r.db.WithContext(ctx).Create(observation).Error
}

func (r *plantRepository) GetObservations(ctx context.Context) ([]*entities.PlantObservation, error) {
	var observations []*entities.PlantObservation
	if err := r.db.WithContext(ctx).Order("id asc").Find(&observations).Error; err != nil {
		return nil, err
	}
	return observations, nil
}
