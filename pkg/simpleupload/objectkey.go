package simpleupload

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// KeyGenerator defines the interface for storage key generation strategies
type KeyGenerator interface {
	// GenerateKey creates an object key for the given normalized filename
	GenerateKey(filename string) string
}

// TokenKeyGenerator builds keys as {unix-millis}-{token}-{filename}. The
// token is derived from a random UUID, so concurrent uploads of an identical
// name within the same millisecond still receive distinct keys. The leading
// timestamp keeps bucket listings roughly in upload order.
type TokenKeyGenerator struct{}

func NewTokenKeyGenerator() *TokenKeyGenerator {
	return &TokenKeyGenerator{}
}

func (g *TokenKeyGenerator) GenerateKey(filename string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	if filename == "" {
		return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), token)
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), token, filename)
}

// KeyGeneratorFunc adapts a plain function to the KeyGenerator interface
type KeyGeneratorFunc func(filename string) string

func (f KeyGeneratorFunc) GenerateKey(filename string) string {
	return f(filename)
}
