package api

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/tendant/simple-upload/pkg/simpleupload"
)

// maxRequestSize caps the whole multipart request body: the file limit plus
// headroom for the form boundary and the userId field.
const maxRequestSize = simpleupload.MaxUploadSize + 64<<10

// maxMultipartMemory is the in-memory threshold for multipart parsing;
// larger payloads spill to temporary files.
const maxMultipartMemory = 8 << 20

// ImagesHandler handles the image upload and listing API endpoints
type ImagesHandler struct {
	service simpleupload.Service
}

func NewImagesHandler(service simpleupload.Service) *ImagesHandler {
	return &ImagesHandler{service: service}
}

// Routes returns the router for the images endpoints
func (h *ImagesHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(middleware.RequestSize(maxRequestSize)).Post("/upload", h.UploadImage)
	r.Get("/images", h.ListImages)
	r.Get("/", h.Greeting)
	return r
}

// UploadResponse represents the response after a successful upload
type UploadResponse struct {
	Message string              `json:"message"`
	Image   *simpleupload.Image `json:"image"`
}

// MessageResponse carries a human-readable rejection message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a server-side failure message
type ErrorResponse struct {
	Error string `json:"error"`
}

// UploadImage accepts a multipart form with a single "image" file and a
// "userId" field, stores the file and records its metadata
func (h *ImagesHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		// Either not a multipart request or the body blew past the
		// RequestSize cap mid-parse.
		slog.Error("Failed to parse upload form", "err", err)
		renderMessage(w, r, http.StatusBadRequest, "Upload rejected: request body too large or malformed")
		return
	}

	header, err := validateUpload(r.MultipartForm)
	if err != nil {
		renderMessage(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}
	mimeType := header.Header.Get("Content-Type")

	userID, err := strconv.ParseInt(r.FormValue("userId"), 10, 64)
	if err != nil {
		renderMessage(w, r, http.StatusBadRequest, "Invalid or missing userId")
		return
	}

	file, err := header.Open()
	if err != nil {
		slog.Error("Failed to open uploaded file", "filename", header.Filename, "err", err)
		renderError(w, r, err)
		return
	}
	defer file.Close()

	image, err := h.service.UploadImage(r.Context(), simpleupload.UploadImageRequest{
		UserID:   userID,
		FileName: header.Filename,
		MimeType: mimeType,
		Size:     header.Size,
		Data:     file,
	})
	if err != nil {
		slog.Error("Failed to upload image", "filename", header.Filename, "user_id", userID, "err", err)
		renderError(w, r, err)
		return
	}

	slog.Info("Image uploaded", "id", image.ID, "user_id", image.UserID, "filename", image.Filename)
	render.JSON(w, r, UploadResponse{
		Message: "Image uploaded successfully",
		Image:   image,
	})
}

// ListImages returns every recorded image
func (h *ImagesHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListImages(r.Context())
	if err != nil {
		slog.Error("Failed to list images", "err", err)
		renderError(w, r, err)
		return
	}

	if images == nil {
		images = []*simpleupload.Image{}
	}
	render.JSON(w, r, images)
}

// Greeting responds with a plain text greeting
func (h *ImagesHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "Hello, World!")
}

// validateUpload enforces the admission rules on the parsed form: exactly one
// file in the "image" field, declared MIME type on the allow list, payload no
// larger than MaxUploadSize.
func validateUpload(form *multipart.Form) (*multipart.FileHeader, error) {
	files := form.File["image"]
	if len(files) == 0 {
		return nil, simpleupload.ErrNoFile
	}
	if len(files) > 1 {
		return nil, simpleupload.ErrTooManyFiles
	}

	header := files[0]
	if !simpleupload.MimeTypeAllowed(header.Header.Get("Content-Type")) {
		return nil, simpleupload.ErrInvalidFileType
	}
	if header.Size > simpleupload.MaxUploadSize {
		return nil, simpleupload.ErrFileTooLarge
	}
	return header, nil
}

// validationMessage translates an admission error into the client-facing text
func validationMessage(err error) string {
	switch {
	case errors.Is(err, simpleupload.ErrNoFile):
		return "No file uploaded"
	case errors.Is(err, simpleupload.ErrTooManyFiles):
		return "Only one file may be uploaded per request"
	case errors.Is(err, simpleupload.ErrInvalidFileType):
		return "Invalid file type, only JPEG, PNG, and GIF are allowed"
	case errors.Is(err, simpleupload.ErrFileTooLarge):
		return "File exceeds the 10 MiB upload limit"
	default:
		return err.Error()
	}
}

func renderMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, MessageResponse{Message: message})
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}
