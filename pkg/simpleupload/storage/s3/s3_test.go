package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(Config{Region: "us-east-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket name is required")
}

func TestNewWithStaticCredentials(t *testing.T) {
	backend, err := New(Config{
		Bucket:          "test-bucket",
		AccessKeyID:     "test-key",
		SecretAccessKey: "test-secret",
	})
	require.NoError(t, err)
	require.NotNil(t, backend)

	// Region falls back to the default when unset.
	assert.Equal(t, "us-east-1", backend.config.Region)
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		key      string
		expected string
	}{
		{
			name:     "virtual-hosted AWS URL by default",
			config:   Config{Bucket: "photos"},
			key:      "123-abc-cat.jpg",
			expected: "https://photos.s3.amazonaws.com/123-abc-cat.jpg",
		},
		{
			name: "path-style URL with custom endpoint",
			config: Config{
				Bucket:   "photos",
				Endpoint: "http://localhost:9000",
			},
			key:      "123-abc-cat.jpg",
			expected: "http://localhost:9000/photos/123-abc-cat.jpg",
		},
		{
			name: "explicit public base overrides everything",
			config: Config{
				Bucket:        "photos",
				Endpoint:      "http://localhost:9000",
				PublicBaseURL: "https://cdn.example.com/",
			},
			key:      "123-abc-cat.jpg",
			expected: "https://cdn.example.com/123-abc-cat.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.AccessKeyID = "test-key"
			tt.config.SecretAccessKey = "test-secret"
			backend, err := New(tt.config)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, backend.PublicURL(tt.key))
		})
	}
}
