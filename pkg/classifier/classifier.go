package classifier

import (
	"Leafia-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Labels is the closed category set of the deployed leaf model. Catalog
// entries must use one of these names for lookups to resolve.
var Labels = []string{"Aphids", "Healthy", "mites+thrips"}

var (
	ErrModelUnavailable = errors.New("classifier service unavailable")
	ErrUnknownLabel     = errors.New("classifier returned a label outside the category set")
)

type (
	// Classifier maps hosted leaf images to one label each. Implementations
	// are constructed once during startup and shared by all requests.
	Classifier interface {
		PredictSingle(ctx context.Context, imageURL string) (string, error)
		PredictBatch(ctx context.Context, imageURLs []string) ([]string, error)
	}

	httpClassifier struct {
		modelURL string
		client   *http.Client
		labels   map[string]struct{}
	}
)

func NewHTTPClassifier() Classifier {
	return newHTTPClassifier(utils.GetConfig("AI_MODEL_URL"))
}

func newHTTPClassifier(modelURL string) *httpClassifier {
	labels := make(map[string]struct{}, len(Labels))
	for _, label := range Labels {
		labels[label] = struct{}{}
	}
	return &httpClassifier{
		modelURL: modelURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		labels:   labels,
	}
}

func (c *httpClassifier) PredictSingle(ctx context.Context, imageURL string) (string, error) {
	predictions, err := c.PredictBatch(ctx, []string{imageURL})
	if err != nil {
		return "", err
	}
	return predictions[0], nil
}

func (c *httpClassifier) PredictBatch(ctx context.Context, imageURLs []string) ([]string, error) {
	if c.modelURL == "" {
		return nil, fmt.Errorf("%w: AI_MODEL_URL not configured", ErrModelUnavailable)
	}

	requestJSON, err := json.Marshal(map[string]any{"image_urls": imageURLs})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s - %s", ErrModelUnavailable, resp.Status, string(bodyBytes))
	}

	var modelResp struct {
		Success     bool     `json:"success"`
		Predictions []string `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&modelResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	if !modelResp.Success || len(modelResp.Predictions) != len(imageURLs) {
		return nil, fmt.Errorf("%w: expected %d predictions, got %d", ErrModelUnavailable, len(imageURLs), len(modelResp.Predictions))
	}

	for _, prediction := range modelResp.Predictions {
		if _, ok := c.labels[prediction]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, prediction)
		}
	}

	return modelResp.Predictions, nil
}
