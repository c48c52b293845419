package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MayankMaurya27/Ecommerce/models"
)

const (
	visionDefaultURL  = "https://vision.googleapis.com/v1/images:annotate"
	maxImageBytes     = 10 << 20 // 10 MiB upload cap
	visionMaxResults  = 10
	minScore          = 0.5
	maxTextWords      = 5
	minTextWordLength = 3
)

// Validation and soft-failure conditions the handler turns into 400s/warnings
// instead of 500s.
var (
	ErrNotAnImage        = errors.New("file is not an image")
	ErrImageTooLarge     = errors.New("image exceeds the 10MB limit")
	ErrNothingIdentified = errors.New("could not identify objects in the image")
)

// VisionClient turns an uploaded image into a product search query via the
// Cloud Vision annotate API.
type VisionClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewVisionClient creates a Vision client. The API key comes from the
// environment; hard-coding credentials in source is how the old frontend
// leaked its key, so an unset key is fatal here.
func NewVisionClient() *VisionClient {
	apiKey := os.Getenv("VISION_API_KEY")
	if apiKey == "" {
		log.Fatal("VISION_API_KEY environment variable not set")
	}

	return &VisionClient{
		apiKey:  apiKey,
		baseURL: visionDefaultURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchTerms validates and annotates an image, reducing the response to a
// single lower-cased search string. It returns ErrNotAnImage/ErrImageTooLarge
// before any network call, and ErrNothingIdentified when annotation succeeded
// but produced no usable terms.
func (v *VisionClient) SearchTerms(ctx context.Context, image []byte, mimeType string) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrNotAnImage
	}
	if len(image) > maxImageBytes {
		return "", ErrImageTooLarge
	}

	encoded, err := encodeImagePayload(image)
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	reqBody := models.VisionAnnotateRequest{
		Requests: []models.VisionRequest{{
			Image: models.VisionImage{Content: encoded},
			Features: []models.VisionFeature{
				{Type: "LABEL_DETECTION", MaxResults: visionMaxResults},
				{Type: "TEXT_DETECTION", MaxResults: visionMaxResults},
				{Type: "OBJECT_LOCALIZATION", MaxResults: visionMaxResults},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal annotate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"?key="+v.apiKey, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		log.Printf("[vision] request failed: %v", err)
		return "", fmt.Errorf("failed to reach vision API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var annotated models.VisionAnnotateResponse
	if err := json.Unmarshal(body, &annotated); err != nil {
		log.Printf("[vision] unparseable response: %s", truncate(string(body), 200))
		return "", fmt.Errorf("invalid response from vision API: %s", truncate(string(body), 200))
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if annotated.Error != nil && annotated.Error.Message != "" {
			msg = annotated.Error.Message
		}
		log.Printf("[vision] api error: %s", msg)
		return "", fmt.Errorf("failed to analyze image: %s", msg)
	}

	if len(annotated.Responses) == 0 {
		return "", errors.New("no annotations found in response")
	}

	terms := reduceAnnotations(annotated.Responses[0])
	if len(terms) == 0 {
		return "", ErrNothingIdentified
	}

	query := strings.ToLower(strings.Join(terms, " "))
	log.Printf("[vision] identified %d terms", len(terms))
	return query, nil
}

// reduceAnnotations collects high-confidence labels, the leading words of the
// first text annotation, and high-confidence object names, in that order.
func reduceAnnotations(r models.VisionResponse) []string {
	var terms []string

	for _, label := range r.LabelAnnotations {
		if label.Score > minScore {
			terms = append(terms, label.Description)
		}
	}

	if len(r.TextAnnotations) > 0 {
		// First annotation carries the full detected text block.
		words := strings.Fields(r.TextAnnotations[0].Description)
		added := 0
		for _, word := range words {
			if len(word) < minTextWordLength {
				continue
			}
			terms = append(terms, word)
			added++
			if added == maxTextWords {
				break
			}
		}
	}

	for _, obj := range r.LocalizedObjectAnnotations {
		if obj.Score > minScore {
			terms = append(terms, obj.Name)
		}
	}

	return terms
}

// encodeImagePayload base64-encodes raw image bytes. Clients occasionally
// upload a data URI instead of the raw file; the envelope prefix is stripped
// and the remainder used as-is.
func encodeImagePayload(image []byte) (string, error) {
	if bytes.HasPrefix(image, []byte("data:")) {
		idx := bytes.IndexByte(image, ',')
		if idx < 0 {
			return "", errors.New("malformed data URI")
		}
		encoded := string(image[idx+1:])
		// Validate before forwarding.
		if _, err := base64.StdEncoding.DecodeString(encoded); err != nil {
			return "", fmt.Errorf("malformed data URI payload: %w", err)
		}
		return encoded, nil
	}
	return base64.StdEncoding.EncodeToString(image), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
