package domain

import "errors"

var (
	MessageNoImagePart         = "No image part in the request"
	MessageNoSelectedImage     = "No selected image"
	MessageNoImagesUploaded    = "No images uploaded"
	MessageNoPlantsFound       = "No user plants found."
	MessageFailedUploadPlant   = "failed to add plant record"
	MessageFailedUploadImage   = "image upload failed"
	MessageFailedClassifyImage = "image classification failed"
	MessageFailedGetPlants     = "failed to retrieve user plants"

	ErrClassificationFailed = errors.New("classification failed")
	ErrNoPlantObservations  = errors.New("no plant observations found")
)

type (
	// PredictResponse answers a classification-only request; nothing is
	// recorded in the observation log.
	PredictResponse struct {
		Filename   string `json:"filename"`
		Prediction string `json:"prediction"`
		URL        string `json:"url"`
	}

	UploadPlantResponse struct {
		ID         uint   `json:"id"`
		Filename   string `json:"filename"`
		DiseaseID  uint   `json:"disease_id"`
		Prediction string `json:"prediction"`
		URL        string `json:"url"`
		Solution   string `json:"Solution"`
	}

	// BatchPredictionEntry is one line of a /predict_batch response.
	// Either Prediction+URL or Error is set, never both.
	BatchPredictionEntry struct {
		Filename   string `json:"filename"`
		Prediction string `json:"prediction,omitempty"`
		URL        string `json:"url,omitempty"`
		Error      string `json:"error,omitempty"`
	}

	PlantObservationResponse struct {
		ID         uint   `json:"id"`
		PlantImage string `json:"plant_image"`
		Location   string `json:"location"`
		DiseaseID  uint   `json:"disease_id"`
		ObservedAt string `json:"datetime"`
	}
)
