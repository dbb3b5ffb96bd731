// Package storage persists captured screenshots and maps them to
// public URLs.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Shot describes one saved screenshot.
type Shot struct {
	Filename string
	Path     string // absolute path on disk
	URL      string // public URL path, e.g. /screenshots/<name>.png
}

// Store writes PNG screenshots into a directory served as static
// files.
type Store struct {
	dir       string
	urlPrefix string
}

// NewStore creates the screenshots directory if needed. urlPrefix is
// the URL path the web server mounts the directory under.
func NewStore(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create screenshots directory %s: %w", dir, err)
	}
	urlPrefix = "/" + strings.Trim(urlPrefix, "/")
	return &Store{dir: dir, urlPrefix: urlPrefix}, nil
}

// Dir returns the directory screenshots are written to.
func (s *Store) Dir() string { return s.dir }

// URLPrefix returns the URL path prefix screenshots are served under.
func (s *Store) URLPrefix() string { return s.urlPrefix }

// Save writes PNG bytes under a unique timestamped name.
func (s *Store) Save(pngData []byte) (Shot, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return Shot{}, fmt.Errorf("failed to generate screenshot name: %w", err)
	}

	name := fmt.Sprintf("%s_%s.png",
		time.Now().Format("20060102_150405"), hex.EncodeToString(suffix))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, pngData, 0o644); err != nil {
		return Shot{}, fmt.Errorf("failed to write screenshot %s: %w", path, err)
	}

	return Shot{
		Filename: name,
		Path:     path,
		URL:      s.urlPrefix + "/" + name,
	}, nil
}

// Prune removes screenshots older than maxAge and returns how many
// were deleted. Best-effort: unreadable entries are skipped.
func (s *Store) Prune(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read screenshots directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".png") {
			continue
		}
		info, err := ent.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(s.dir, ent.Name())) == nil {
				removed++
			}
		}
	}
	return removed, nil
}
