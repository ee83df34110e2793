package upload_image

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/velumi/NailStudio-Backend/internal/api/handlers"
)

const (
	msgFileRequired   = "ожидается файл в поле image"
	msgFileTooLarge   = "файл слишком большой"
	msgBadExtension   = "допустимы только изображения jpg, jpeg, png, webp"
	formFieldName     = "image"
	uploadsURLPrefix  = "/uploads/"
	dirPermissions    = 0o755
)

// допустимые расширения файлов
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UploadResponse HTTP response model
type UploadResponse struct {
	URL string `json:"url"`
}

type Handler struct {
	dir      string
	maxBytes int64
	logger   Logger
}

func NewHandler(dir string, maxSizeMB int, logger Logger) *Handler {
	return &Handler{
		dir:      dir,
		maxBytes: int64(maxSizeMB) << 20,
		logger:   logger,
	}
}

// Handle POST /api/v1/uploads
// Сохраняет изображение под случайным именем и возвращает URL
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		h.logger.Warn("POST /uploads - Failed to parse multipart form: %v", err)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
		return
	}

	file, header, err := r.FormFile(formFieldName)
	if err != nil {
		h.logger.Warn("POST /uploads - Missing file field: %v", err)
		handlers.RespondBadRequest(w, msgFileRequired)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		h.logger.Warn("POST /uploads - Rejected extension %q", ext)
		handlers.RespondBadRequest(w, msgBadExtension)
		return
	}

	if err := os.MkdirAll(h.dir, dirPermissions); err != nil {
		h.logger.Error("POST /uploads - Failed to create uploads dir: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	dstPath := filepath.Join(h.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		h.logger.Error("POST /uploads - Failed to create file %s: %v", dstPath, err)
		handlers.RespondInternalError(w)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.logger.Error("POST /uploads - Failed to write file %s: %v", dstPath, err)
		_ = os.Remove(dstPath)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /uploads - Saved %s (%d bytes)", name, header.Size)
	handlers.RespondJSON(w, http.StatusCreated, &UploadResponse{URL: uploadsURLPrefix + name})
}
