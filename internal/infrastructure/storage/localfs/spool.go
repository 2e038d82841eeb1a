// Package localfs keeps a short-lived on-disk copy of each uploaded
// file while its text is being extracted. Spooled files are removed as
// soon as processing finishes; a restart may leave orphans behind,
// which live under a dedicated directory so they are easy to sweep.
package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Spool struct {
	basePath string
}

func NewSpool(basePath string) (*Spool, error) {
	if basePath == "" {
		basePath = filepath.Join(os.TempDir(), "docsight-uploads")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &Spool{basePath: basePath}, nil
}

// Save writes content under a fresh key and returns the file path.
func (s *Spool) Save(_ context.Context, content []byte) (string, error) {
	path := filepath.Join(s.basePath, fmt.Sprintf("pdf-%s.pdf", uuid.NewString()))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write spool file: %w", err)
	}
	return path, nil
}

// Remove deletes a spooled file. Missing files are not an error.
func (s *Spool) Remove(_ context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove spool file: %w", err)
	}
	return nil
}
