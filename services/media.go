package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaUploader stores a file and returns its public URL.
type MediaUploader interface {
	Upload(ctx context.Context, folder, filename string, file io.Reader) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader returns nil when cld is nil so callers can treat
// media storage as unconfigured.
func NewCloudinaryUploader(cld *cloudinary.Cloudinary) MediaUploader {
	if cld == nil {
		return nil
	}
	return &CloudinaryUploader{cld: cld}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, folder, filename string, file io.Reader) (string, error) {
	publicID := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
