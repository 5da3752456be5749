package handlers

import (
	"Leafia-Backend/domain"
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubPlantService struct {
	uploadRes     domain.UploadPlantResponse
	uploadErr     error
	predictRes    domain.PredictResponse
	predictErr    error
	batchEntries  []domain.BatchPredictionEntry
	batchErr      error
	plants        []domain.PlantObservationResponse
	plantsErr     error
	seenLocations []string
}

func (s *stubPlantService) UploadPlant(ctx context.Context, image *multipart.FileHeader, location string) (domain.UploadPlantResponse, error) {
	s.seenLocations = append(s.seenLocations, location)
	return s.uploadRes, s.uploadErr
}

func (s *stubPlantService) Predict(ctx context.Context, image *multipart.FileHeader) (domain.PredictResponse, error) {
	return s.predictRes, s.predictErr
}

func (s *stubPlantService) PredictBatch(ctx context.Context, images []*multipart.FileHeader) ([]domain.BatchPredictionEntry, error) {
	return s.batchEntries, s.batchErr
}

func (s *stubPlantService) GetUserPlants(ctx context.Context) ([]domain.PlantObservationResponse, error) {
	return s.plants, s.plantsErr
}

func newPlantApp(stub *stubPlantService) *fiber.App {
	app := fiber.New()
	h := NewPlantHandler(stub)
	app.Post("/upload_plant", h.UploadPlant)
	app.Post("/predict", h.Predict)
	app.Post("/predict_batch", h.PredictBatch)
	app.Get("/get_user_plants", h.GetUserPlants)
	return app
}

func multipartBody(t *testing.T, field string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, filename := range filenames {
		part, err := writer.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte("payload")); err != nil {
			t.Fatalf("failed to write payload: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadPlantMissingImagePart(t *testing.T) {
	app := newPlantApp(&stubPlantService{})

	body, contentType := multipartBody(t, "not_image", "leaf.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload_plant", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestUploadPlantSuccessShape(t *testing.T) {
	stub := &stubPlantService{
		uploadRes: domain.UploadPlantResponse{
			ID:         7,
			Filename:   "leaf.jpg",
			DiseaseID:  2,
			Prediction: "Aphids",
			URL:        "https://img.test/plants/leaf.jpg",
			Solution:   "Use insecticidal soap or neem oil.",
		},
	}
	app := newPlantApp(stub)

	body, contentType := multipartBody(t, "image", "leaf.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload_plant", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	for _, key := range []string{"id", "filename", "disease_id", "prediction", "url", "Solution"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("response missing key %q: %v", key, payload)
		}
	}

	// an omitted location falls back to Unknown
	if len(stub.seenLocations) != 1 || stub.seenLocations[0] != "Unknown" {
		t.Fatalf("expected default location Unknown, got %v", stub.seenLocations)
	}
}

func TestUploadPlantUnknownLabel(t *testing.T) {
	app := newPlantApp(&stubPlantService{uploadErr: domain.ErrDiseaseNotFound})

	body, contentType := multipartBody(t, "image", "leaf.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload_plant", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

// The pipeline reports classifier outages on their own status code rather
// than pretending the label was merely absent from the catalog.
func TestUploadPlantClassifierOutage(t *testing.T) {
	app := newPlantApp(&stubPlantService{uploadErr: domain.ErrClassificationFailed})

	body, contentType := multipartBody(t, "image", "leaf.jpg")
	req := httptest.NewRequest(http.MethodPost, "/upload_plant", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, resp.StatusCode)
	}
}

func TestPredictSuccessShape(t *testing.T) {
	app := newPlantApp(&stubPlantService{
		predictRes: domain.PredictResponse{
			Filename:   "leaf.jpg",
			Prediction: "Healthy",
			URL:        "https://img.test/plants/leaf.jpg",
		},
	})

	body, contentType := multipartBody(t, "image", "leaf.jpg")
	req := httptest.NewRequest(http.MethodPost, "/predict", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	for _, key := range []string{"filename", "prediction", "url"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("response missing key %q: %v", key, payload)
		}
	}
}

func TestPredictMissingImagePart(t *testing.T) {
	app := newPlantApp(&stubPlantService{})

	body, contentType := multipartBody(t, "not_image", "leaf.jpg")
	req := httptest.NewRequest(http.MethodPost, "/predict", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestPredictBatchNoImages(t *testing.T) {
	app := newPlantApp(&stubPlantService{})

	body, contentType := multipartBody(t, "other_field", "x.jpg")
	req := httptest.NewRequest(http.MethodPost, "/predict_batch", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestPredictBatchReturnsEntries(t *testing.T) {
	app := newPlantApp(&stubPlantService{
		batchEntries: []domain.BatchPredictionEntry{
			{Filename: "bad.jpg", Error: "image upload failed: bucket rejected upload"},
			{Filename: "a.jpg", Prediction: "Healthy", URL: "https://img.test/plants/a.jpg"},
		},
	})

	body, contentType := multipartBody(t, "images", "bad.jpg", "a.jpg")
	req := httptest.NewRequest(http.MethodPost, "/predict_batch", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var entries []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestGetUserPlantsEmptyAnswers404(t *testing.T) {
	app := newPlantApp(&stubPlantService{plantsErr: domain.ErrNoPlantObservations})

	req := httptest.NewRequest(http.MethodGet, "/get_user_plants", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}
