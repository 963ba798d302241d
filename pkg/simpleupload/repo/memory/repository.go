package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tendant/simple-upload/pkg/simpleupload"
)

// Repository implements simpleupload.Repository using in-memory storage.
// Intended for tests and local development.
type Repository struct {
	mu     sync.RWMutex
	images []*simpleupload.Image
	nextID int64
}

// New creates a new in-memory repository
func New() simpleupload.Repository {
	return &Repository{nextID: 1}
}

func (r *Repository) CreateImage(ctx context.Context, image *simpleupload.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	image.ID = r.nextID
	r.nextID++
	image.UploadedAt = time.Now().UTC()

	// Store a copy to avoid external modifications
	imageCopy := *image
	r.images = append(r.images, &imageCopy)

	return nil
}

func (r *Repository) ListImages(ctx context.Context) ([]*simpleupload.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	images := make([]*simpleupload.Image, 0, len(r.images))
	for _, image := range r.images {
		imageCopy := *image
		images = append(images, &imageCopy)
	}

	return images, nil
}
