package simpleupload_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-upload/pkg/simpleupload"
	"github.com/tendant/simple-upload/pkg/simpleupload/repo/memory"
	memorystorage "github.com/tendant/simple-upload/pkg/simpleupload/storage/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []simpleupload.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []simpleupload.Option{},
			expectError: true,
		},
		{
			name: "repository alone should fail",
			options: []simpleupload.Option{
				simpleupload.WithRepository(memory.New()),
			},
			expectError: true,
		},
		{
			name: "repository and blob store should succeed",
			options: []simpleupload.Option{
				simpleupload.WithRepository(memory.New()),
				simpleupload.WithBlobStore(memorystorage.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := simpleupload.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T) (simpleupload.Service, *memorystorage.Backend) {
	t.Helper()

	store := memorystorage.New()
	svc, err := simpleupload.New(
		simpleupload.WithRepository(memory.New()),
		simpleupload.WithBlobStore(store),
	)
	require.NoError(t, err)

	return svc, store
}

func TestUploadImage(t *testing.T) {
	svc, store := setupTestService(t)
	ctx := context.Background()

	payload := []byte("fake jpeg bytes")
	image, err := svc.UploadImage(ctx, simpleupload.UploadImageRequest{
		UserID:   5,
		FileName: "My Photo!!.JPG",
		MimeType: simpleupload.MimeTypeJPEG,
		Size:     int64(len(payload)),
		Data:     strings.NewReader(string(payload)),
	})
	require.NoError(t, err)

	assert.Positive(t, image.ID)
	assert.EqualValues(t, 5, image.UserID)
	assert.Equal(t, "my_photo.jpg", image.Filename)
	assert.True(t, strings.HasPrefix(image.URL, "memory://"), "unexpected URL %s", image.URL)
	assert.WithinDuration(t, time.Now(), image.UploadedAt, 5*time.Second)

	// The stored object must be readable under the key embedded in the URL.
	key := strings.TrimPrefix(image.URL, "memory://")
	meta, err := store.GetObjectMeta(ctx, key)
	require.NoError(t, err)
	assert.EqualValues(t, len(payload), meta.Size)
	assert.Equal(t, simpleupload.MimeTypeJPEG, meta.ContentType)
}

func TestUploadImageStoreFailure(t *testing.T) {
	repo := memory.New()
	svc, err := simpleupload.New(
		simpleupload.WithRepository(repo),
		simpleupload.WithBlobStore(&failingBlobStore{}),
	)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.UploadImage(ctx, simpleupload.UploadImageRequest{
		UserID:   1,
		FileName: "cat.png",
		MimeType: simpleupload.MimeTypePNG,
		Data:     strings.NewReader("data"),
	})
	require.Error(t, err)

	var storageErr *simpleupload.StorageError
	assert.ErrorAs(t, err, &storageErr)

	// A failed store must not leave metadata behind.
	images, err := repo.ListImages(ctx)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestUploadImageRepositoryFailureDeletesObject(t *testing.T) {
	store := memorystorage.New()
	svc, err := simpleupload.New(
		simpleupload.WithRepository(&failingRepository{}),
		simpleupload.WithBlobStore(store),
		simpleupload.WithKeyGenerator(simpleupload.KeyGeneratorFunc(func(string) string {
			return "known-key"
		})),
	)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.UploadImage(ctx, simpleupload.UploadImageRequest{
		UserID:   1,
		FileName: "cat.png",
		MimeType: simpleupload.MimeTypePNG,
		Data:     strings.NewReader("data"),
	})
	require.Error(t, err)

	var repoErr *simpleupload.RepositoryError
	assert.ErrorAs(t, err, &repoErr)

	// The compensating delete must have removed the stored object.
	_, err = store.GetObjectMeta(ctx, "known-key")
	assert.Error(t, err)
}

func TestListImages(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	images, err := svc.ListImages(ctx)
	require.NoError(t, err)
	assert.Empty(t, images)

	for _, name := range []string{"first.png", "second.png"} {
		_, err := svc.UploadImage(ctx, simpleupload.UploadImageRequest{
			UserID:   7,
			FileName: name,
			MimeType: simpleupload.MimeTypePNG,
			Data:     strings.NewReader("data"),
		})
		require.NoError(t, err)
	}

	images, err = svc.ListImages(ctx)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "first.png", images[0].Filename)
	assert.Equal(t, "second.png", images[1].Filename)
}

// Test doubles

type failingBlobStore struct{}

func (s *failingBlobStore) Upload(ctx context.Context, reader io.Reader, params simpleupload.UploadParams) error {
	return errors.New("store unavailable")
}

func (s *failingBlobStore) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	return nil, errors.New("store unavailable")
}

func (s *failingBlobStore) Delete(ctx context.Context, objectKey string) error {
	return errors.New("store unavailable")
}

func (s *failingBlobStore) GetObjectMeta(ctx context.Context, objectKey string) (*simpleupload.ObjectMeta, error) {
	return nil, errors.New("store unavailable")
}

func (s *failingBlobStore) PublicURL(objectKey string) string {
	return "memory://" + objectKey
}

type failingRepository struct{}

func (r *failingRepository) CreateImage(ctx context.Context, image *simpleupload.Image) error {
	return errors.New("database unavailable")
}

func (r *failingRepository) ListImages(ctx context.Context) ([]*simpleupload.Image, error) {
	return nil, errors.New("database unavailable")
}
