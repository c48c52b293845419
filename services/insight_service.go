package services

import (
	"bytes"
	"context"
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

const insightDefaultURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// ErrMissingProduct is returned when there is no product record to describe;
// no request is made in that case.
var ErrMissingProduct = errors.New("product information not available")

// InsightClient generates longform product write-ups via the Gemini
// generateContent API.
type InsightClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewInsightClient creates a Gemini client with the key from the environment.
func NewInsightClient() *InsightClient {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	return &InsightClient{
		apiKey:  apiKey,
		baseURL: insightDefaultURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// ProductInsight asks the model for a structured write-up of the product and
// returns the first candidate's text. Content blocks and unparseable bodies
// come back as errors carrying enough context for a user-facing message.
func (g *InsightClient) ProductInsight(ctx context.Context, product models.Product) (string, error) {
	if strings.TrimSpace(product.Title) == "" {
		return "", ErrMissingProduct
	}

	reqBody := models.GenerateContentRequest{
		Contents: []models.GenerateContent{{
			Parts: []models.GeneratePart{{Text: buildInsightPrompt(product)}},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"?key="+g.apiKey, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[insight] request failed: %v", err)
		return "", fmt.Errorf("failed to reach generation API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var generated models.GenerateContentResponse
	if err := json.Unmarshal(body, &generated); err != nil {
		log.Printf("[insight] unparseable response: %s", truncate(string(body), 200))
		return "", fmt.Errorf("invalid response from server: %s", truncate(string(body), 200))
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.Status)
		if generated.Error != nil && generated.Error.Message != "" {
			msg = generated.Error.Message
		}
		log.Printf("[insight] api error: %s", msg)
		return "", errors.New(msg)
	}

	if len(generated.Candidates) > 0 && len(generated.Candidates[0].Content.Parts) > 0 {
		return generated.Candidates[0].Content.Parts[0].Text, nil
	}

	if generated.PromptFeedback != nil && generated.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("content was blocked: %s", generated.PromptFeedback.BlockReason)
	}

	log.Printf("[insight] unexpected response structure: %s", truncate(string(body), 200))
	return "", errors.New("invalid response from AI")
}

// buildInsightPrompt embeds the product record into the fixed six-section
// template the storefront modal renders.
func buildInsightPrompt(p models.Product) string {
	description := p.Description
	if strings.TrimSpace(description) == "" {
		description = "No description available"
	}
	category := p.Category
	if strings.TrimSpace(category) == "" {
		category = "Not specified"
	}

	return fmt.Sprintf(`Provide detailed information about this product:
Title: %s
Description: %s
Price: ₹%.2f
Category: %s

Please provide:
1. Key features and benefits
2. Use cases and applications
3. Technical specifications (if applicable)
4. Comparison with similar products
5. Buying recommendations
6. Any additional relevant information

Format the response in a clear, structured way.`, p.Title, description, p.Price, category)
}

// InsightFallbackMessage composes the text shown when generation fails, so
// the failure path still populates the modal instead of leaving it blank.
func InsightFallbackMessage(err error) string {
	msg := "Unknown error occurred"
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf("Sorry, we could not fetch AI information at this time.\n\nError: %s\n\nPlease check:\n1. Your internet connection\n2. API key validity\n3. Try again later", msg)
}
