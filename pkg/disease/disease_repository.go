package disease

import (
	"Leafia-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	DiseaseRepository interface {
		CreateDiseases(ctx context.Context, diseases []*entities.Disease) error
		GetDiseases(ctx context.Context) ([]*entities.Disease, error)
		GetDiseaseByID(ctx context.Context, id uint) (*entities.Disease, error)
		GetDiseaseByName(ctx context.Context, name string) (*entities.Disease, error)
		UpdateDisease(ctx context.Context, disease *entities.Disease) error
		DeleteDisease(ctx context.Context, id uint) error
		ClearDiseases(ctx context.Context) error
	}

	diseaseRepository struct {
		db *gorm.DB
	}
)

func NewDiseaseRepository(db *gorm.DB) DiseaseRepository {
	return &diseaseRepository{db: db}
}

func (r *diseaseRepository) CreateDiseases(ctx context.Context, diseases []*entities.Disease) error {
	return r.db.WithContext(ctx).Create(diseases).Error
}

func (r *diseaseRepository) GetDiseases(ctx context.Context) ([]*entities.Disease, error) {
	var diseases []*entities.Disease
	if err := r.db.WithContext(ctx).Order("id asc").Find(&diseases).Error; err != nil {
		return nil, err
	}
	return diseases, nil
}

func (r *diseaseRepository) GetDiseaseByID(ctx context.Context, id uint) (*entities.Disease, error) {
	var disease entities.Disease
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&disease).Error; err != nil {
		return nil, err
	}
	return &disease, nil
}

func (r *diseaseRepository) GetDiseaseByName(ctx context.Context, name string) (*entities.Disease, error) {
	var disease entities.Disease
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&disease).Error; err != nil {
		return nil, err
	}
	return &disease, nil
}

func (r *diseaseRepository) UpdateDisease(ctx context.Context, disease *entities.Disease) error {
	return r.db.WithContext(ctx).Save(disease).Error
}

// DeleteDisease removes a catalog entry together with the observations
// referencing it. Both deletes run in one transaction; any failure rolls
// the whole cascade back.
func (r *diseaseRepository) DeleteDisease(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("disease_id = ?", id).Delete(&entities.PlantObservation{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Disease{}).Error
	})
}

func (r *diseaseRepository) ClearDiseases(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.PlantObservation{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&entities.Disease{}).Error
	})
}
