package simpleupload_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-upload/pkg/simpleupload"
)

func TestTokenKeyGeneratorFormat(t *testing.T) {
	gen := simpleupload.NewTokenKeyGenerator()

	key := gen.GenerateKey("my_photo.jpg")

	parts := strings.SplitN(key, "-", 3)
	require.Len(t, parts, 3)

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), time.UnixMilli(millis), 5*time.Second)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), parts[1])
	assert.Equal(t, "my_photo.jpg", parts[2])
}

func TestTokenKeyGeneratorEmptyFilename(t *testing.T) {
	gen := simpleupload.NewTokenKeyGenerator()

	key := gen.GenerateKey("")

	parts := strings.SplitN(key, "-", 3)
	require.Len(t, parts, 2)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), parts[1])
}

func TestTokenKeyGeneratorUniqueness(t *testing.T) {
	gen := simpleupload.NewTokenKeyGenerator()

	// Identical names generated back to back, almost certainly within the
	// same millisecond, must still not collide.
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		key := gen.GenerateKey("cat.png")
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %s", key)
		seen[key] = struct{}{}
	}
}

func TestKeyGeneratorFunc(t *testing.T) {
	gen := simpleupload.KeyGeneratorFunc(func(filename string) string {
		return "fixed-" + filename
	})

	assert.Equal(t, "fixed-a.png", gen.GenerateKey("a.png"))
}
