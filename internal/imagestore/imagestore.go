// Package imagestore persists uploaded item photos on local disk, one file
// per upload, named {unixTimestampSeconds}_{12-hex-char-sha1}{ext}.
package imagestore

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned by Delete when the file is already gone.
var ErrNotFound = errors.New("image not found")

// Store is a directory of uploaded image files.
type Store struct {
	dir string
}

// New creates the store directory if it doesn't exist.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data to a new file and returns its filename. The name combines
// the current UTC epoch second with a short content hash; identical uploads
// still produce distinct files because the timestamp is part of the name.
// The extension is taken from originalName, defaulting to ".jpg".
func (s *Store) Save(data []byte, originalName string) (string, error) {
	sum := sha1.Sum(data)
	hash := hex.EncodeToString(sum[:])[:12]

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().UTC().Unix(), hash, ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}
	return name, nil
}

// Delete removes a stored file. Returns ErrNotFound when the file is already
// gone, so callers can tell a missing file from an I/O failure.
func (s *Store) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting image file: %w", err)
	}
	return nil
}

// Exists reports whether a stored file is present and readable.
func (s *Store) Exists(name string) bool {
	if name == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil && info.Mode().IsRegular()
}

// Path returns the on-disk path for a stored filename.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}
