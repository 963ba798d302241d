package simpleupload

import (
	"context"
	"io"
	"time"
)

// BlobStore defines the interface for storage backends
type BlobStore interface {
	// Upload writes the object under the given key with the given content type
	Upload(ctx context.Context, reader io.Reader, params UploadParams) error

	// Download reads the object back
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes the object
	Delete(ctx context.Context, objectKey string) error

	// GetObjectMeta retrieves metadata for a stored object
	GetObjectMeta(ctx context.Context, objectKey string) (*ObjectMeta, error)

	// PublicURL returns the publicly resolvable address for an object key
	PublicURL(objectKey string) string
}

// Repository defines the interface for image metadata persistence
type Repository interface {
	// CreateImage inserts a new record and populates its ID and UploadedAt
	CreateImage(ctx context.Context, image *Image) error

	// ListImages returns every record in storage order
	ListImages(ctx context.Context) ([]*Image, error)
}

// UploadParams contains parameters for uploading an object
type UploadParams struct {
	ObjectKey string
	MimeType  string
}

// ObjectMeta contains metadata about an object in storage
type ObjectMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
	ETag        string
}
