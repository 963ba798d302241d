package simpleupload

import "io"

// Request DTOs

// UploadImageRequest contains parameters for uploading one image. FileName is
// the user-supplied original name; the service normalizes it before use.
// Size and MimeType are the values declared by the client, validated at the
// HTTP boundary before the service is invoked.
type UploadImageRequest struct {
	UserID   int64
	FileName string
	MimeType string
	Size     int64
	Data     io.Reader
}
