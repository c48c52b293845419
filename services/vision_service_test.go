package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MayankMaurya27/Ecommerce/models"
)

func newTestVisionClient(url string) *VisionClient {
	return &VisionClient{
		apiKey:  "test-key",
		baseURL: url,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSearchTermsRejectsNonImageWithoutNetworkCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	v := newTestVisionClient(srv.URL)
	_, err := v.SearchTerms(context.Background(), []byte("hello"), "text/plain")

	if !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("err = %v, want ErrNotAnImage", err)
	}
	if calls != 0 {
		t.Errorf("network calls = %d, want 0", calls)
	}
}

func TestSearchTermsRejectsOversizedImage(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	v := newTestVisionClient(srv.URL)
	big := make([]byte, maxImageBytes+1)
	_, err := v.SearchTerms(context.Background(), big, "image/png")

	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", err)
	}
	if calls != 0 {
		t.Errorf("network calls = %d, want 0", calls)
	}
}

func TestSearchTermsReducesAnnotations(t *testing.T) {
	image := []byte{0x89, 0x50, 0x4e, 0x47}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.VisionAnnotateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Requests) != 1 || len(req.Requests[0].Features) != 3 {
			t.Errorf("want one request with three features, got %+v", req.Requests)
		}
		for _, f := range req.Requests[0].Features {
			if f.MaxResults != 10 {
				t.Errorf("feature %s maxResults = %d, want 10", f.Type, f.MaxResults)
			}
		}
		decoded, err := base64.StdEncoding.DecodeString(req.Requests[0].Image.Content)
		if err != nil || string(decoded) != string(image) {
			t.Errorf("image content does not round-trip: %v", err)
		}

		json.NewEncoder(w).Encode(models.VisionAnnotateResponse{
			Responses: []models.VisionResponse{{
				LabelAnnotations: []models.VisionLabel{
					{Description: "Sneaker", Score: 0.92},
					{Description: "Maybe", Score: 0.4}, // below threshold, dropped
				},
				TextAnnotations: []models.VisionText{
					{Description: "AIR max 270 by a big brand name here"},
				},
				LocalizedObjectAnnotations: []models.VisionLocalizedObject{
					{Name: "Shoe", Score: 0.88},
					{Name: "Blur", Score: 0.2},
				},
			}},
		})
	}))
	defer srv.Close()

	v := newTestVisionClient(srv.URL)
	got, err := v.SearchTerms(context.Background(), image, "image/png")
	if err != nil {
		t.Fatalf("SearchTerms: %v", err)
	}

	// Labels > 0.5, then first five words longer than two chars, then objects
	// > 0.5, all lower-cased and space-joined.
	want := "sneaker air max 270 big brand shoe"
	if got != want {
		t.Errorf("search terms = %q, want %q", got, want)
	}
}

func TestSearchTermsEmptyAnnotationsIsSoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.VisionAnnotateResponse{
			Responses: []models.VisionResponse{{}},
		})
	}))
	defer srv.Close()

	v := newTestVisionClient(srv.URL)
	_, err := v.SearchTerms(context.Background(), []byte{1, 2, 3}, "image/jpeg")

	if !errors.Is(err, ErrNothingIdentified) {
		t.Fatalf("err = %v, want ErrNothingIdentified", err)
	}
}

func TestSearchTermsSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(models.VisionAnnotateResponse{
			Error: &models.VisionError{Code: 403, Message: "API key expired"},
		})
	}))
	defer srv.Close()

	v := newTestVisionClient(srv.URL)
	_, err := v.SearchTerms(context.Background(), []byte{1, 2, 3}, "image/jpeg")

	if err == nil || !strings.Contains(err.Error(), "API key expired") {
		t.Errorf("err = %v, want message containing the API error", err)
	}
}

func TestSearchTermsStripsDataURIPrefix(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff}
	dataURI := []byte("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.VisionAnnotateRequest
		json.NewDecoder(r.Body).Decode(&req)
		decoded, err := base64.StdEncoding.DecodeString(req.Requests[0].Image.Content)
		if err != nil || string(decoded) != string(raw) {
			t.Errorf("data URI prefix not stripped: %q", req.Requests[0].Image.Content)
		}
		json.NewEncoder(w).Encode(models.VisionAnnotateResponse{
			Responses: []models.VisionResponse{{
				LabelAnnotations: []models.VisionLabel{{Description: "Camera", Score: 0.9}},
			}},
		})
	}))
	defer srv.Close()

	v := newTestVisionClient(srv.URL)
	got, err := v.SearchTerms(context.Background(), dataURI, "image/jpeg")
	if err != nil {
		t.Fatalf("SearchTerms: %v", err)
	}
	if got != "camera" {
		t.Errorf("search terms = %q, want %q", got, "camera")
	}
}
