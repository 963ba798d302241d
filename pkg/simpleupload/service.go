package simpleupload

import "context"

// Service defines the main interface for the simple-upload library
type Service interface {
	// UploadImage stores the payload in the blob store and records its
	// metadata. The returned Image carries the generated ID and UploadedAt.
	UploadImage(ctx context.Context, req UploadImageRequest) (*Image, error)

	// ListImages returns all recorded images
	ListImages(ctx context.Context) ([]*Image, error)
}
