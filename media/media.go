// Package media stores teacher profile images.
package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/meinhoongagan/edumate/config"
)

// ImageStore turns the image value sent by a client into the reference kept on
// the teacher record.
type ImageStore interface {
	Store(ctx context.Context, image string) (string, error)
}

// Passthrough keeps the client value unchanged.
type Passthrough struct{}

func (Passthrough) Store(_ context.Context, image string) (string, error) {
	return image, nil
}

// IsDataURI reports whether image carries inline data rather than a reference.
func IsDataURI(image string) bool {
	return strings.HasPrefix(image, "data:")
}

type uploadFunc func(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)

// CloudinaryStore uploads inline data URIs and returns the hosted URL. Values that
// are already references are kept as they are.
type CloudinaryStore struct {
	upload uploadFunc
	preset string
	folder string
}

func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStore{
		upload: cld.Upload.Upload,
		preset: cfg.UploadPreset,
		folder: cfg.Folder,
	}, nil
}

func (s *CloudinaryStore) Store(ctx context.Context, image string) (string, error) {
	if !IsDataURI(image) {
		return image, nil
	}
	resp, err := s.upload(ctx, image, uploader.UploadParams{
		Folder:         s.folder,
		UploadPreset:   s.preset,
		Transformation: "c_thumb,w_200,h_200",
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("upload image: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// New picks the Cloudinary store when credentials are configured.
func New(cfg config.CloudinaryConfig) (ImageStore, error) {
	if !cfg.Enabled() {
		return Passthrough{}, nil
	}
	return NewCloudinaryStore(cfg)
}
