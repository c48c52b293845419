package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MayankMaurya27/Ecommerce/models"
)

func newTestInsightClient(url string) *InsightClient {
	return &InsightClient{
		apiKey:  "test-key",
		baseURL: url,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestProductInsightRejectsMissingProduct(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	g := newTestInsightClient(srv.URL)
	_, err := g.ProductInsight(context.Background(), models.Product{Title: "  "})

	if !errors.Is(err, ErrMissingProduct) {
		t.Fatalf("err = %v, want ErrMissingProduct", err)
	}
	if calls != 0 {
		t.Errorf("network calls = %d, want 0", calls)
	}
}

func TestProductInsightReturnsFirstCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		prompt := req.Contents[0].Parts[0].Text
		for _, want := range []string{
			"Title: Wireless Headphones",
			"Description: No description available",
			"Category: Not specified",
			"Key features and benefits",
			"Buying recommendations",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q:\n%s", want, prompt)
			}
		}

		json.NewEncoder(w).Encode(models.GenerateContentResponse{
			Candidates: []models.GenerateCandidate{{
				Content: models.GenerateContent{
					Parts: []models.GeneratePart{{Text: "Great headphones."}, {Text: "ignored"}},
				},
			}},
		})
	}))
	defer srv.Close()

	g := newTestInsightClient(srv.URL)
	got, err := g.ProductInsight(context.Background(), models.Product{Title: "Wireless Headphones", Price: 2999})
	if err != nil {
		t.Fatalf("ProductInsight: %v", err)
	}
	if got != "Great headphones." {
		t.Errorf("insight = %q, want first part of first candidate", got)
	}
}

func TestProductInsightSurfacesBlockReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.GenerateContentResponse{
			PromptFeedback: &models.PromptFeedback{BlockReason: "SAFETY"},
		})
	}))
	defer srv.Close()

	g := newTestInsightClient(srv.URL)
	_, err := g.ProductInsight(context.Background(), models.Product{Title: "Thing"})

	if err == nil || !strings.Contains(err.Error(), "SAFETY") {
		t.Fatalf("err = %v, want message containing SAFETY", err)
	}

	// The failure path still yields viewable content.
	fallback := InsightFallbackMessage(err)
	if !strings.Contains(fallback, "SAFETY") || !strings.Contains(fallback, "Try again later") {
		t.Errorf("fallback = %q, want block reason plus troubleshooting steps", fallback)
	}
}

func TestProductInsightUnparseableBodyIncludesExcerpt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	g := newTestInsightClient(srv.URL)
	_, err := g.ProductInsight(context.Background(), models.Product{Title: "Thing"})

	if err == nil || !strings.Contains(err.Error(), "gateway timeout") {
		t.Errorf("err = %v, want raw-body excerpt as diagnostic context", err)
	}
}

func TestProductInsightSurfacesAPIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(models.GenerateContentResponse{
			Error: &models.GenerateContentError{Code: 429, Message: "Resource exhausted", Status: "RESOURCE_EXHAUSTED"},
		})
	}))
	defer srv.Close()

	g := newTestInsightClient(srv.URL)
	_, err := g.ProductInsight(context.Background(), models.Product{Title: "Thing"})

	if err == nil || !strings.Contains(err.Error(), "Resource exhausted") {
		t.Errorf("err = %v, want API error message", err)
	}
}
