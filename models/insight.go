package models

// Request/response shapes for the Gemini generateContent API.

type GenerateContentRequest struct {
	Contents []GenerateContent `json:"contents"`
}

type GenerateContent struct {
	Parts []GeneratePart `json:"parts"`
}

type GeneratePart struct {
	Text string `json:"text"`
}

type GenerateContentResponse struct {
	Candidates     []GenerateCandidate   `json:"candidates,omitempty"`
	PromptFeedback *PromptFeedback       `json:"promptFeedback,omitempty"`
	Error          *GenerateContentError `json:"error,omitempty"`
}

type GenerateCandidate struct {
	Content GenerateContent `json:"content"`
}

type PromptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type GenerateContentError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ProductInsightResponse is what the storefront insight endpoint returns.
// On failure Insight still carries a locally composed explanation so the
// client always has viewable content.
type ProductInsightResponse struct {
	ProductID string `json:"product_id"`
	Insight   string `json:"insight"`
	Fallback  bool   `json:"fallback,omitempty"`
}
