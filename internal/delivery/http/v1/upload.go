package v1

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/imaging"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// Uploader validates multipart files and writes them to storage under a
// generated name. The returned name is what documents reference.
type Uploader struct {
	files    storage.Storage
	limiter  *security.UploadLimiter
	maxBytes int64
}

func NewUploader(files storage.Storage, limiter *security.UploadLimiter, maxBytes int64) *Uploader {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &Uploader{files: files, limiter: limiter, maxBytes: maxBytes}
}

// Save stores the file in form field field. It returns "" without error when
// the request carries no such file.
func (u *Uploader) Save(c *gin.Context, field string, kind security.UploadKind) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", apperror.Validation("Invalid upload")
	}
	if u.files == nil {
		return "", apperror.Internal(errors.New("upload storage not configured"))
	}

	if header.Size > u.maxBytes {
		return "", apperror.Validation(fmt.Sprintf("File exceeds the %d MB limit", u.maxBytes>>20))
	}
	if err := security.ValidateFileExtension(kind, header.Filename); err != nil {
		return "", apperror.Validation("Invalid " + field + ": " + err.Error())
	}

	identity, _ := domain.IdentityFrom(c.Request.Context())
	allowed, retryAfter, err := u.limiter.AllowUpload(c.Request.Context(), c.ClientIP(), identity.UserID)
	if err != nil {
		logger.Log.Warn("Upload limiter failed", "request_id", c.GetString("RequestID"), "error", err)
	}
	if !allowed {
		c.Header("Retry-After", fmt.Sprint(retryAfter))
		return "", apperror.TooManyRequests("Too many uploads. Please try again later.")
	}

	f, err := header.Open()
	if err != nil {
		return "", apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, u.maxBytes+1))
	if err != nil {
		return "", apperror.Internal(err)
	}
	if int64(len(data)) > u.maxBytes {
		return "", apperror.Validation(fmt.Sprintf("File exceeds the %d MB limit", u.maxBytes>>20))
	}

	result := security.ValidateFile(kind, header.Filename, data)
	if !result.Valid {
		return "", apperror.Validation("Invalid " + field + ": " + result.Error)
	}

	original := header.Filename
	if kind == security.UploadImage {
		resized, changed, err := imaging.Downscale(data, imaging.DefaultMaxDimension, imaging.DefaultQuality)
		if err != nil {
			return "", apperror.Validation("Invalid " + field + ": unreadable image")
		}
		if changed {
			data = resized
			original = strings.TrimSuffix(original, filepath.Ext(original)) + ".jpg"
		}
	}

	name := storage.NewFileName(original)
	contentType := mimetype.Detect(data).String()
	if err := u.files.Save(c.Request.Context(), name, bytes.NewReader(data), contentType); err != nil {
		return "", apperror.Internal(err)
	}
	return name, nil
}

// Discard removes a file saved earlier in a request that then failed.
func (u *Uploader) Discard(ctx context.Context, name string) {
	if name == "" || u.files == nil {
		return
	}
	if err := u.files.Delete(ctx, name); err != nil {
		logger.Log.Warn("Failed to remove upload", "file", name, "error", err)
	}
}
