package resumehandler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmind/internal/domain/auth"
	"matchmind/internal/transport/http/api"
	"matchmind/internal/transport/http/middleware"
	"matchmind/internal/transport/http/shared"
	"matchmind/internal/upload"
)

// multipartOverhead covers form boundaries and headers around the file part.
const multipartOverhead = 64 * 1024

type Handler struct {
	Gateway  upload.Gateway
	MaxBytes int64
	Perms    middleware.PermissionStore
}

func NewHandler(gateway upload.Gateway, maxBytes int64, perms middleware.PermissionStore) *Handler {
	return &Handler{Gateway: gateway, MaxBytes: maxBytes, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermResumesUpload, h.Perms)).Post("/resumes", h.handleUpload)
}

// handleUpload runs the same two-step flow as the console uploader for a
// multipart "file" part. Each request gets its own Uploader.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid multipart payload", middleware.GetRequestID(r.Context()))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		shared.FailError(w, upload.ErrNoFile, "resume_upload_failed", middleware.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.MaxBytes+1))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "failed to read file", middleware.GetRequestID(r.Context()))
		return
	}

	uploader := upload.New(h.Gateway, h.MaxBytes, nil)
	if err := uploader.Select(upload.File{
		Name:     header.Filename,
		Declared: header.Header.Get("Content-Type"),
		Data:     data,
	}); err != nil {
		shared.FailError(w, err, "resume_upload_failed", middleware.GetRequestID(r.Context()))
		return
	}
	uploaded, err := uploader.Upload(r.Context())
	if err != nil {
		shared.FailError(w, err, "resume_upload_failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, uploaded, middleware.GetRequestID(r.Context()))
}
