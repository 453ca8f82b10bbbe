package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore implements Store against the Cloudinary upload API.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

var _ Store = (*CloudinaryStore)(nil)

// NewCloudinaryStore creates a store for the given Cloudinary account.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores the stream under publicID and returns its public URL.
func (s *CloudinaryStore) Upload(ctx context.Context, r io.Reader, resourceType, publicID string) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}
	// The SDK reports API-level failures in the response body, not err.
	if res.Error.Message != "" {
		return "", fmt.Errorf("upload media: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}

// Destroy removes the object identified by publicID. An already-deleted
// object counts as success.
func (s *CloudinaryStore) Destroy(ctx context.Context, publicID, resourceType string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("destroy media %s: %w", publicID, err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("destroy media %s: %s", publicID, res.Result)
	}
	return nil
}
