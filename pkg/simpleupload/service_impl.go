package simpleupload

import (
	"context"
	"fmt"
	"log/slog"
)

// service implements the Service interface
type service struct {
	repository Repository
	store      BlobStore
	keys       KeyGenerator
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the metadata repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBlobStore sets the blob storage backend
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithKeyGenerator overrides the default storage key generation strategy
func WithKeyGenerator(gen KeyGenerator) Option {
	return func(s *service) {
		s.keys = gen
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		keys: NewTokenKeyGenerator(),
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.store == nil {
		return nil, fmt.Errorf("blob store is required")
	}

	return s, nil
}

func (s *service) UploadImage(ctx context.Context, req UploadImageRequest) (*Image, error) {
	filename := NormalizeFilename(req.FileName)
	key := s.keys.GenerateKey(filename)

	err := s.store.Upload(ctx, req.Data, UploadParams{
		ObjectKey: key,
		MimeType:  req.MimeType,
	})
	if err != nil {
		return nil, &StorageError{Key: key, Op: "upload", Err: err}
	}

	image := &Image{
		UserID:   req.UserID,
		URL:      s.store.PublicURL(key),
		Filename: filename,
	}
	if err := s.repository.CreateImage(ctx, image); err != nil {
		// The object landed but its record did not. Delete the object so a
		// failed request leaves nothing behind on either side.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			slog.Error("failed to delete object after metadata insert failure",
				"key", key, "err", delErr)
		}
		return nil, &RepositoryError{Op: "create image", Err: err}
	}

	return image, nil
}

func (s *service) ListImages(ctx context.Context) ([]*Image, error) {
	images, err := s.repository.ListImages(ctx)
	if err != nil {
		return nil, &RepositoryError{Op: "list images", Err: err}
	}
	return images, nil
}
