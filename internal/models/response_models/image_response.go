package response_models

import "globetrotter/internal/models/db_models"

// ImageResponse carries a stored blob across the HTTP boundary. The Data
// field is a []byte, which encoding/json renders as a base64 string.
type ImageResponse struct {
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
	Filename    string `json:"filename"`
}

// BuildImageResponse returns nil when no image was stored so the field is
// absent from the JSON rather than an empty object.
func BuildImageResponse(img db_models.Image) *ImageResponse {
	if !img.Present() {
		return nil
	}
	return &ImageResponse{
		Data:        img.Data,
		ContentType: img.ContentType,
		Filename:    img.Filename,
	}
}
