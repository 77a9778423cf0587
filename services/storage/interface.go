package storage

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService uploads vehicle media and verification documents and
// returns permanent URLs.
type StorageService interface {
	// UploadFile uploads a multipart file into the given folder and returns
	// its delivery URL.
	UploadFile(ctx context.Context, file *multipart.FileHeader, destFolder string) (string, error)
	// DeleteFile deletes a previously uploaded file given its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
