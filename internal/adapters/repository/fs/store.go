// Package fs persists screens, playlists and slide assets on the local
// filesystem: one directory per screen holding a config.json playlist
// document and numbered JPEG assets. The layout is read directly by
// operators and display devices, so it is part of the contract.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"signage/internal/core/domain"
	coreerrors "signage/internal/core/errors"
)

// playlistFile is the playlist document name inside each screen directory.
const playlistFile = "config.json"

// Store implements the playlist, asset and registry ports over a root
// directory.
type Store struct {
	root string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store rooted at dir, creating dir if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create root %s: %v", coreerrors.ErrIO, dir, err)
	}
	return &Store{
		root:  dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) screenDir(screenID string) string {
	return filepath.Join(s.root, screenID)
}

// WithScreen runs fn while holding this screen's mutex, serializing
// read-modify-write sequences against the playlist document and asset
// numbering. Screens lock independently; reads outside WithScreen never
// block on writers beyond the file read itself.
func (s *Store) WithScreen(screenID string, fn func() error) error {
	s.mu.Lock()
	l, ok := s.locks[screenID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[screenID] = l
	}
	s.mu.Unlock()

	l.Lock()
	defer l.Unlock()
	return fn()
}

// Read returns the screen's playlist. A missing document is an empty
// playlist, not an error.
func (s *Store) Read(screenID string) ([]domain.Slide, error) {
	data, err := os.ReadFile(filepath.Join(s.screenDir(screenID), playlistFile))
	if os.IsNotExist(err) {
		return []domain.Slide{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read playlist for %s: %v", coreerrors.ErrIO, screenID, err)
	}

	var slides []domain.Slide
	if err := json.Unmarshal(data, &slides); err != nil {
		return nil, fmt.Errorf("%w: parse playlist for %s: %v", coreerrors.ErrIO, screenID, err)
	}
	if slides == nil {
		slides = []domain.Slide{}
	}
	return slides, nil
}

// Write replaces the screen's playlist document, creating the screen
// directory if absent. The document is replaced via temp file + rename so a
// concurrent poller never observes a partial write.
func (s *Store) Write(screenID string, slides []domain.Slide) error {
	dir := s.screenDir(screenID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create screen dir %s: %v", coreerrors.ErrIO, screenID, err)
	}

	if slides == nil {
		slides = []domain.Slide{}
	}
	data, err := json.MarshalIndent(slides, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode playlist for %s: %v", coreerrors.ErrIO, screenID, err)
	}

	tmp, err := os.CreateTemp(dir, playlistFile+".*")
	if err != nil {
		return fmt.Errorf("%w: stage playlist for %s: %v", coreerrors.ErrIO, screenID, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write playlist for %s: %v", coreerrors.ErrIO, screenID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write playlist for %s: %v", coreerrors.ErrIO, screenID, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, playlistFile)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace playlist for %s: %v", coreerrors.ErrIO, screenID, err)
	}
	return nil
}
