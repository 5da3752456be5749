package plant

import (
	"Leafia-Backend/domain"
	"Leafia-Backend/entities"
	"Leafia-Backend/internal/utils/storage"
	"Leafia-Backend/pkg/classifier"
	"Leafia-Backend/pkg/disease"
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PlantService interface {
		UploadPlant(ctx context.Context, image *multipart.FileHeader, location string) (domain.UploadPlantResponse, error)
		Predict(ctx context.Context, image *multipart.FileHeader) (domain.PredictResponse, error)
		PredictBatch(ctx context.Context, images []*multipart.FileHeader) ([]domain.BatchPredictionEntry, error)
		GetUserPlants(ctx context.Context) ([]domain.PlantObservationResponse, error)
	}

	plantService struct {
		plantRepository   PlantRepository
		diseaseRepository disease.DiseaseRepository
		classifier        classifier.Classifier
		s3                storage.AwsS3
	}
)

func NewPlantService(
	plantRepository PlantRepository,
	diseaseRepository disease.DiseaseRepository,
	classifier classifier.Classifier,
	s3 storage.AwsS3,
) PlantService {
	return &plantService{
		plantRepository:   plantRepository,
		diseaseRepository: diseaseRepository,
		classifier:        classifier,
		s3:                s3,
	}
}

// UploadPlant runs the full pipeline: store the image, classify it, resolve
// the catalog entry and record the observation. Any failure after the upload
// deletes the hosted object again so no orphans accumulate.
func (s *plantService) UploadPlant(ctx context.Context, image *multipart.FileHeader, location string) (domain.UploadPlantResponse, error) {
	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("plant-%s", uuid.New().String()),
		image,
		"plants",
		storage.AllowImage...,
	)
	if err != nil {
		return domain.UploadPlantResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	prediction, err := s.classifier.PredictSingle(ctx, imageURL)
	if err != nil {
		s.discardUpload(objectKey)
		return domain.UploadPlantResponse{}, fmt.Errorf("%w: %v", domain.ErrClassificationFailed, err)
	}

	res, err := s.diseaseRepository.GetDiseaseByName(ctx, prediction)
	if err != nil {
		s.discardUpload(objectKey)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadPlantResponse{}, domain.ErrDiseaseNotFound
		}
		return domain.UploadPlantResponse{}, err
	}

	observation := &entities.PlantObservation{
		PlantImage: imageURL,
		Location:   location,
		DiseaseID:  res.ID,
		ObservedAt: time.Now(),
	}
	if err := s.plantRepository.CreateObservation(ctx, observation); err != nil {
		s.discardUpload(objectKey)
		return domain.UploadPlantResponse{}, err
	}

	return domain.UploadPlantResponse{
		ID:         observation.ID,
		Filename:   image.Filename,
		DiseaseID:  res.ID,
		Prediction: res.Name,
		URL:        observation.PlantImage,
		Solution:   res.Solution,
	}, nil
}

// Predict stores the image and classifies it without recording an
// observation. The hosted image stays, its URL is part of the answer.
func (s *plantService) Predict(ctx context.Context, image *multipart.FileHeader) (domain.PredictResponse, error) {
	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("plant-%s", uuid.New().String()),
		image,
		"plants",
		storage.AllowImage...,
	)
	if err != nil {
		return domain.PredictResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	prediction, err := s.classifier.PredictSingle(ctx, imageURL)
	if err != nil {
		s.discardUpload(objectKey)
		return domain.PredictResponse{}, fmt.Errorf("%w: %v", domain.ErrClassificationFailed, err)
	}

	return domain.PredictResponse{
		Filename:   image.Filename,
		Prediction: prediction,
		URL:        imageURL,
	}, nil
}

// PredictBatch uploads each file independently, recording per-file errors
// instead of aborting, then classifies the successful subset in one call.
// Nothing is persisted. Success entries keep submission order.
func (s *plantService) PredictBatch(ctx context.Context, images []*multipart.FileHeader) ([]domain.BatchPredictionEntry, error) {
	entries := make([]domain.BatchPredictionEntry, 0, len(images))
	var (
		uploadedKeys  []string
		uploadedURLs  []string
		uploadedNames []string
	)

	for _, image := range images {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("plant-%s", uuid.New().String()),
			image,
			"plants",
			storage.AllowImage...,
		)
		if err != nil {
			entries = append(entries, domain.BatchPredictionEntry{
				Filename: image.Filename,
				Error:    fmt.Sprintf("%s: %v", domain.MessageFailedUploadImage, err),
			})
			continue
		}
		uploadedKeys = append(uploadedKeys, objectKey)
		uploadedURLs = append(uploadedURLs, s.s3.GetPublicLinkKey(objectKey))
		uploadedNames = append(uploadedNames, image.Filename)
	}

	if len(uploadedURLs) > 0 {
		predictions, err := s.classifier.PredictBatch(ctx, uploadedURLs)
		if err != nil {
			// no URLs reach the caller, so the hosted objects are unreachable
			for _, key := range uploadedKeys {
				s.discardUpload(key)
			}
			return nil, fmt.Errorf("%w: %v", domain.ErrClassificationFailed, err)
		}
		for i, prediction := range predictions {
			entries = append(entries, domain.BatchPredictionEntry{
				Filename:   uploadedNames[i],
				Prediction: prediction,
				URL:        uploadedURLs[i],
			})
		}
	}

	return entries, nil
}

func (s *plantService) GetUserPlants(ctx context.Context) ([]domain.PlantObservationResponse, error) {
	observations, err := s.plantRepository.GetObservations(ctx)
	if err != nil {
		return nil, err
	}

	if len(observations) == 0 {
		return nil, domain.ErrNoPlantObservations
	}

	response := make([]domain.PlantObservationResponse, 0, len(observations))
	for _, o := range observations {
		response = append(response, domain.PlantObservationResponse{
			ID:         o.ID,
			PlantImage: o.PlantImage,
			Location:   o.Location,
			DiseaseID:  o.DiseaseID,
			ObservedAt: o.ObservedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return response, nil
}

func (s *plantService) discardUpload(objectKey string) {
	if err := s.s3.DeleteFile(objectKey); err != nil {
		log.Printf("Error deleting orphaned upload %s: %v", objectKey, err)
	}
}
