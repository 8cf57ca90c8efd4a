package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads into a directory served as static files.
type LocalStorage struct {
	basePath   string
	publicPath string
}

func NewLocalStorage(basePath, publicPath string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "./uploads"
	}
	if publicPath == "" {
		publicPath = "/uploads"
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath:   basePath,
		publicPath: "/" + strings.Trim(publicPath, "/"),
	}, nil
}

// Dir is the directory files are written to.
func (s *LocalStorage) Dir() string {
	return s.basePath
}

func (s *LocalStorage) Save(ctx context.Context, name string, r io.Reader, contentType string) error {
	if err := validName(name); err != nil {
		return err
	}

	// O_EXCL: generated names never overwrite an existing upload
	file, err := os.OpenFile(filepath.Join(s.basePath, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		_ = os.Remove(file.Name())
		return fmt.Errorf("failed to write file: %w", err)
	}
	return file.Close()
}

func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.basePath, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(name string) string {
	return s.publicPath + "/" + name
}
