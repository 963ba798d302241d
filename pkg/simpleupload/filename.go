package simpleupload

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^\w.-]`)
)

// NormalizeFilename sanitizes a user-supplied filename into a storage-safe
// key fragment: lowercased, each interior run of whitespace collapsed to a
// single underscore, and every character outside [a-z0-9_.-] removed. The
// transformation is total; it may return an empty string and does not
// guarantee uniqueness.
func NormalizeFilename(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = whitespaceRun.ReplaceAllString(name, "_")
	return unsafeChars.ReplaceAllString(name, "")
}
