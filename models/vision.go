package models

// Request/response shapes for the Google Cloud Vision images:annotate API.
// Only the fields the image-search flow reads are declared.

type VisionAnnotateRequest struct {
	Requests []VisionRequest `json:"requests"`
}

type VisionRequest struct {
	Image    VisionImage     `json:"image"`
	Features []VisionFeature `json:"features"`
}

type VisionImage struct {
	Content string `json:"content"` // base64, no data-URI prefix
}

type VisionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type VisionAnnotateResponse struct {
	Responses []VisionResponse `json:"responses"`
	Error     *VisionError     `json:"error,omitempty"`
}

type VisionResponse struct {
	LabelAnnotations           []VisionLabel           `json:"labelAnnotations,omitempty"`
	TextAnnotations            []VisionText            `json:"textAnnotations,omitempty"`
	LocalizedObjectAnnotations []VisionLocalizedObject `json:"localizedObjectAnnotations,omitempty"`
	Error                      *VisionError            `json:"error,omitempty"`
}

type VisionLabel struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type VisionText struct {
	Description string `json:"description"`
}

type VisionLocalizedObject struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type VisionError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ImageSearchResponse is what the storefront image-search endpoint returns.
type ImageSearchResponse struct {
	SearchTerms string `json:"searchTerms"`
}
