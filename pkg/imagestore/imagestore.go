// Package imagestore keeps uploaded pet images on local disk. Files are
// renamed to a random UUID with a fixed extension and served back through
// the static route.
package imagestore

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const fileExt = ".jpg"

// Store saves uploaded images under a single directory.
type Store struct {
	dir string
}

// NewStore creates the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory, for static file serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a generated name and returns that name.
func (s *Store) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + fileExt
	if err := c.SaveUploadedFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return name, nil
}
