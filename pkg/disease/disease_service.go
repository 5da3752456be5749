package disease

import (
	"Leafia-Backend/domain"
	"Leafia-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

// defaultSeed matches the category set of the deployed leaf model so a
// fresh catalog resolves every possible prediction.
var defaultSeed = []domain.DiseaseSeedRequest{
	{Name: "Aphids", Category: "Insect", Solution: "Use insecticidal soap or neem oil."},
	{Name: "Healthy", Category: "Healthy", Solution: "No action needed."},
	{Name: "mites+thrips", Category: "Insect", Solution: "Use miticides or insecticidal soap."},
}

type (
	DiseaseService interface {
		PopulateDiseases(ctx context.Context, req []domain.DiseaseSeedRequest) error
		GetDiseases(ctx context.Context) ([]domain.DiseaseResponse, error)
		UpdateDisease(ctx context.Context, id uint, req domain.UpdateDiseaseRequest) error
		DeleteDisease(ctx context.Context, id uint) error
		ClearDiseases(ctx context.Context) error
	}

	diseaseService struct {
		diseaseRepository DiseaseRepository
	}
)

func NewDiseaseService(diseaseRepository DiseaseRepository) DiseaseService {
	return &diseaseService{diseaseRepository: diseaseRepository}
}

// PopulateDiseases bulk-creates catalog entries. An empty request seeds
// the built-in starter catalog.
func (s *diseaseService) PopulateDiseases(ctx context.Context, req []domain.DiseaseSeedRequest) error {
	if len(req) == 0 {
		req = defaultSeed
	}

	diseases := make([]*entities.Disease, 0, len(req))
	for _, seed := range req {
		diseases = append(diseases, &entities.Disease{
			Name:     seed.Name,
			Category: seed.Category,
			Solution: seed.Solution,
		})
	}

	return s.diseaseRepository.CreateDiseases(ctx, diseases)
}

func (s *diseaseService) GetDiseases(ctx context.Context) ([]domain.DiseaseResponse, error) {
	diseases, err := s.diseaseRepository.GetDiseases(ctx)
	if err != nil {
		return nil, err
	}

	if len(diseases) == 0 {
		return nil, domain.ErrNoDiseases
	}

	response := make([]domain.DiseaseResponse, 0, len(diseases))
	for _, d := range diseases {
		response = append(response, domain.DiseaseResponse{
			ID:       d.ID,
			Name:     d.Name,
			Category: d.Category,
			Solution: d.Solution,
		})
	}

	return response, nil
}

// UpdateDisease only touches the remediation text; name and category are
// fixed once seeded because the name must keep matching a model label.
func (s *diseaseService) UpdateDisease(ctx context.Context, id uint, req domain.UpdateDiseaseRequest) error {
	disease, err := s.diseaseRepository.GetDiseaseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDiseaseNotFound
		}
		return err
	}

	disease.Solution = req.Solution
	return s.diseaseRepository.UpdateDisease(ctx, disease)
}

func (s *diseaseService) DeleteDisease(ctx context.Context, id uint) error {
	if _, err := s.diseaseRepository.GetDiseaseByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDiseaseNotFound
		}
		return err
	}

	return s.diseaseRepository.DeleteDisease(ctx, id)
}

func (s *diseaseService) ClearDiseases(ctx context.Context) error {
	return s.diseaseRepository.ClearDiseases(ctx)
}
