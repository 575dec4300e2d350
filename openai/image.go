package openai

import (
	"context"

	"github.com/kbukum/openaikit/httpclient"
)

// ImageSize is the dimension of a generated image.
type ImageSize string

// Supported image sizes.
const (
	ImageSize256  ImageSize = "256x256"
	ImageSize512  ImageSize = "512x512"
	ImageSize1024 ImageSize = "1024x1024"
)

// ImageResponseFormat selects how generated images are returned.
type ImageResponseFormat string

// Supported response formats.
const (
	ImageFormatURL     ImageResponseFormat = "url"
	ImageFormatB64JSON ImageResponseFormat = "b64_json"
)

// CreateImageRequest is the body of POST /images/generations.
type CreateImageRequest struct {
	Prompt         string              `json:"prompt"`
	N              *int                `json:"n,omitempty"`
	Size           ImageSize           `json:"size,omitempty"`
	ResponseFormat ImageResponseFormat `json:"response_format,omitempty"`
	User           string              `json:"user,omitempty"`
}

// ImageData is one generated image, as a URL or base64 payload.
type ImageData struct {
	URL     string `json:"url,omitempty"`
	B64JSON string `json:"b64_json,omitempty"`
}

// ImagesResponse is the body returned by POST /images/generations.
type ImagesResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

// CreateImage creates images from a prompt.
func (a *API) CreateImage(ctx context.Context, req CreateImageRequest, opts ...RequestOption) (*httpclient.Response, error) {
	return a.postJSON(ctx, "createImage", "/images/generations", req, opts)
}
