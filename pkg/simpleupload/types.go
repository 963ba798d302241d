package simpleupload

import "time"

// MaxUploadSize is the largest file payload accepted for upload.
const MaxUploadSize = 10 << 20 // 10 MiB

// Allowed MIME types for uploaded files.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
)

var allowedMimeTypes = map[string]struct{}{
	MimeTypeJPEG: {},
	MimeTypePNG:  {},
	MimeTypeGIF:  {},
}

// MimeTypeAllowed reports whether the declared content type is accepted for
// upload. Only the declared type is checked; file content is not inspected.
func MimeTypeAllowed(mimeType string) bool {
	_, ok := allowedMimeTypes[mimeType]
	return ok
}

// Image is a metadata record for one stored object. ID and UploadedAt are
// assigned by the repository at creation; URL and Filename are set exactly
// once and never updated.
type Image struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
}
