package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Storage keeps uploaded files addressed by a flat generated name.
type Storage interface {
	// Save stores the content of r under name.
	Save(ctx context.Context, name string, r io.Reader, contentType string) error
	// Delete removes name; deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error
	// URL returns the public location of name.
	URL(name string) string
}

// Config holds storage configuration
type Config struct {
	Driver     string // local, s3
	BasePath   string // local directory
	PublicPath string // URL prefix the local directory is served under
	Endpoint   string // custom S3 endpoint (MinIO, Wasabi, R2)
	Region     string
	Bucket     string
	AccessKey  string
	SecretKey  string
	PathStyle  bool
	PublicURL  string // public base URL of the bucket
}

// New creates the storage backend selected by cfg.Driver.
func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStorage(cfg.BasePath, cfg.PublicPath)
	case "s3":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// NewFileName returns a collision-free name keeping the extension of original.
func NewFileName(original string) string {
	ext := strings.ToLower(path.Ext(original))
	return uuid.NewString() + ext
}

// validName rejects names that could escape the storage root.
func validName(name string) error {
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid file name %q", name)
	}
	return nil
}
