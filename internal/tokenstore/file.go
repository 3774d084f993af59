package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the well-known file the token lives under inside the
// state directory.
const tokenFileName = "token"

// File persists the token on disk under a state directory. Clear removes the
// whole directory contents, mirroring the logout contract of wiping all
// local state rather than just the token entry.
type File struct {
	dir string
}

// NewFile constructs a file-backed store rooted at dir. The directory is
// created lazily on the first Save.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) path() string {
	return filepath.Join(f.dir, tokenFileName)
}

func (f *File) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (f *File) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(f.path(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (f *File) Clear(_ context.Context) error {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read state dir: %w", err)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(f.dir, entry.Name())); err != nil {
			return fmt.Errorf("clear state dir: %w", err)
		}
	}
	return nil
}
