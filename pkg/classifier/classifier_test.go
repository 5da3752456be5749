package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newModelServer(t *testing.T, handler http.HandlerFunc) (*httpClassifier, func()) {
	t.Helper()

	srv := httptest.NewServer(handler)
	c := newHTTPClassifier(srv.URL)
	c.client = srv.Client()
	return c, srv.Close
}

func TestPredictBatchKeepsOrder(t *testing.T) {
	c, closeSrv := newModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ImageURLs []string `json:"image_urls"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.ImageURLs) != 3 {
			t.Fatalf("expected 3 urls, got %d", len(req.ImageURLs))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"predictions": []string{"Aphids", "Healthy", "mites+thrips"},
		})
	})
	defer closeSrv()

	predictions, err := c.PredictBatch(context.Background(), []string{"u1", "u2", "u3"})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	want := []string{"Aphids", "Healthy", "mites+thrips"}
	for i, label := range want {
		if predictions[i] != label {
			t.Fatalf("prediction %d: expected %q, got %q", i, label, predictions[i])
		}
	}
}

func TestPredictSingleReturnsOneLabel(t *testing.T) {
	c, closeSrv := newModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"predictions": []string{"Healthy"},
		})
	})
	defer closeSrv()

	label, err := c.PredictSingle(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if label != "Healthy" {
		t.Fatalf("expected Healthy, got %q", label)
	}
}

func TestPredictBatchRejectsUnknownLabel(t *testing.T) {
	c, closeSrv := newModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"predictions": []string{"Rust"},
		})
	})
	defer closeSrv()

	_, err := c.PredictBatch(context.Background(), []string{"u1"})
	if !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("expected ErrUnknownLabel, got %v", err)
	}
}

func TestPredictBatchRejectsCountMismatch(t *testing.T) {
	c, closeSrv := newModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"predictions": []string{"Healthy"},
		})
	})
	defer closeSrv()

	_, err := c.PredictBatch(context.Background(), []string{"u1", "u2"})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestPredictBatchServerError(t *testing.T) {
	c, closeSrv := newModelServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	})
	defer closeSrv()

	_, err := c.PredictBatch(context.Background(), []string{"u1"})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestPredictBatchWithoutModelURL(t *testing.T) {
	c := newHTTPClassifier("")

	_, err := c.PredictBatch(context.Background(), []string{"u1"})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}
