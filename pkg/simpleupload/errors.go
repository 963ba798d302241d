package simpleupload

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrNoFile indicates the upload request carried no file.
	ErrNoFile = errors.New("no file uploaded")

	// ErrTooManyFiles indicates more than one file was sent in a single request.
	ErrTooManyFiles = errors.New("only one file may be uploaded per request")

	// ErrInvalidFileType indicates a declared MIME type outside the allow list.
	ErrInvalidFileType = errors.New("invalid file type, only JPEG, PNG, and GIF are allowed")

	// ErrFileTooLarge indicates a payload above MaxUploadSize.
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
)

// StorageError represents a failure writing to or deleting from the blob store.
type StorageError struct {
	Key string
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// RepositoryError represents a failure reading or writing image metadata.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository operation %s failed: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
