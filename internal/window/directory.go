// Package window enumerates on-screen windows and resolves textual or
// numeric identifiers to window IDs.
package window

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/1broseidon/winshot/internal/platform"
)

// ErrNotFound is returned when an identifier resolves to no window.
var ErrNotFound = errors.New("window not found")

// Record describes one on-screen window. Records are built fresh on
// every query; an ID is only valid while the window stays on screen.
type Record struct {
	ID     uint32        `json:"id"`
	Name   string        `json:"name"`
	Owner  string        `json:"owner"`
	Bounds platform.Rect `json:"bounds"`
}

// Directory answers window queries against a platform backend.
type Directory struct {
	backend platform.Backend
}

// NewDirectory creates a directory over the given backend.
func NewDirectory(backend platform.Backend) *Directory {
	return &Directory{backend: backend}
}

// List returns all named on-screen windows in front-to-back z-order.
// A window-server query failure degrades to an empty list (logged);
// callers that must distinguish "no windows" from "query failed" use
// ListChecked.
func (d *Directory) List() []Record {
	records, err := d.ListChecked()
	if err != nil {
		log.Printf("window list query failed: %v", err)
		return nil
	}
	return records
}

// ListChecked is List with the underlying query error surfaced.
func (d *Directory) ListChecked() ([]Record, error) {
	windows, err := d.backend.ListWindows()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(windows))
	for _, w := range windows {
		// Windows without a name are unaddressable by title search and
		// are excluded from listings.
		if w.Name == "" {
			continue
		}
		records = append(records, Record{
			ID:     uint32(w.ID),
			Name:   w.Name,
			Owner:  w.Owner,
			Bounds: w.Bounds,
		})
	}
	return records, nil
}

// Resolve maps an identifier to a window ID. A decimal integer is
// returned as-is without an existence check (a stale ID fails at
// capture time instead). Otherwise the identifier is matched
// case-insensitively: an exact owner match wins over any substring
// match, so a short application name is never shadowed by a longer
// window title elsewhere. searchOwner extends the substring pass to
// owner names.
func (d *Directory) Resolve(identifier string, searchOwner bool) (uint32, error) {
	if id, err := strconv.ParseUint(identifier, 10, 32); err == nil {
		return uint32(id), nil
	}

	records := d.List()
	term := strings.ToLower(identifier)

	if searchOwner {
		for _, r := range records {
			if strings.ToLower(r.Owner) == term {
				return r.ID, nil
			}
		}
	}

	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), term) {
			return r.ID, nil
		}
		if searchOwner && strings.Contains(strings.ToLower(r.Owner), term) {
			return r.ID, nil
		}
	}

	return 0, ErrNotFound
}

// Find returns the record for a window ID from a fresh listing, or
// false when the window is gone. Unlike List, unnamed windows are
// visible to Find so a capture by raw ID still works.
func (d *Directory) Find(id uint32) (Record, bool) {
	windows, err := d.backend.ListWindows()
	if err != nil {
		log.Printf("window list query failed: %v", err)
		return Record{}, false
	}
	for _, w := range windows {
		if uint32(w.ID) == id {
			return Record{
				ID:     uint32(w.ID),
				Name:   w.Name,
				Owner:  w.Owner,
				Bounds: w.Bounds,
			}, true
		}
	}
	return Record{}, false
}
