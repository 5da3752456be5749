package domain

import "errors"

var (
	MessageSuccessPopulateDiseases = "Diseases populated successfully."
	MessageSuccessUpdateDisease    = "Disease updated successfully."
	MessageSuccessDeleteDisease    = "Disease deleted successfully."
	MessageSuccessClearDiseases    = "All diseases cleared successfully."
	MessageNoDiseasesFound         = "No diseases found."

	MessageFailedPopulateDiseases = "failed to populate diseases"
	MessageFailedGetDiseases      = "failed to retrieve diseases"
	MessageFailedUpdateDisease    = "failed to update disease"
	MessageFailedDeleteDisease    = "failed to delete disease"
	MessageFailedClearDiseases    = "failed to clear diseases"

	ErrDiseaseNotFound = errors.New("disease not found")
	ErrNoDiseases      = errors.New("no diseases found")
)

type (
	DiseaseSeedRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"required"`
		Solution string `json:"solution" validate:"required"`
	}

	UpdateDiseaseRequest struct {
		Solution string `json:"solution" validate:"required"`
	}

	DiseaseResponse struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Solution string `json:"solution"`
	}
)
