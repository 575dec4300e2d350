package openai

import (
	"context"

	"github.com/kbukum/openaikit/httpclient"
)

// CreateModerationRequest is the body of POST /moderations.
// Input accepts a string or a []string.
type CreateModerationRequest struct {
	Input any    `json:"input"`
	Model string `json:"model,omitempty"`
}

// ModerationCategories flags each policy category.
type ModerationCategories struct {
	Hate            bool `json:"hate"`
	HateThreatening bool `json:"hate/threatening"`
	SelfHarm        bool `json:"self-harm"`
	Sexual          bool `json:"sexual"`
	SexualMinors    bool `json:"sexual/minors"`
	Violence        bool `json:"violence"`
	ViolenceGraphic bool `json:"violence/graphic"`
}

// ModerationCategoryScores scores each policy category.
type ModerationCategoryScores struct {
	Hate            float64 `json:"hate"`
	HateThreatening float64 `json:"hate/threatening"`
	SelfHarm        float64 `json:"self-harm"`
	Sexual          float64 `json:"sexual"`
	SexualMinors    float64 `json:"sexual/minors"`
	Violence        float64 `json:"violence"`
	ViolenceGraphic float64 `json:"violence/graphic"`
}

// ModerationResult is the verdict for one input.
type ModerationResult struct {
	Flagged        bool                     `json:"flagged"`
	Categories     ModerationCategories     `json:"categories"`
	CategoryScores ModerationCategoryScores `json:"category_scores"`
}

// CreateModerationResponse is the body returned by POST /moderations.
type CreateModerationResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Results []ModerationResult `json:"results"`
}

// CreateModeration classifies whether text violates the content policy.
func (a *API) CreateModeration(ctx context.Context, req CreateModerationRequest, opts ...RequestOption) (*httpclient.Response, error) {
	return a.postJSON(ctx, "createModeration", "/moderations", req, opts)
}
