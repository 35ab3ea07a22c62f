package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage persists attachments on disk under a base directory and hands
// out signed download URLs served by the /files route.
type LocalStorage struct {
	baseDir string
	signer  *SignedURLSigner
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir string, signer *SignedURLSigner) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, signer: signer}, nil
}

// Put writes the attachment to disk and returns a signed download URL path.
func (s *LocalStorage) Put(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	path := s.resolve(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare upload directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	token, _, err := s.signer.Generate(key)
	if err != nil {
		return "", err
	}
	return "/files/" + token, nil
}

// Open validates a download token and returns a read-only handle for the
// referenced file.
func (s *LocalStorage) Open(token string) (*os.File, error) {
	key, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, err
	}
	// Tokens are signed, but never follow a path outside the base dir.
	if strings.Contains(key, "..") {
		return nil, fmt.Errorf("invalid file key")
	}
	file, err := os.Open(s.resolve(key))
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	return file, nil
}

// Delete removes a stored attachment if present.
func (s *LocalStorage) Delete(key string) error {
	if err := os.Remove(s.resolve(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}

// Path exposes the underlying absolute path (useful for debugging).
func (s *LocalStorage) Path(key string) string {
	return s.resolve(key)
}

func (s *LocalStorage) resolve(key string) string {
	return filepath.Join(s.baseDir, key)
}
