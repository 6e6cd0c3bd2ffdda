package fs

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"signage/internal/core/domain"
	coreerrors "signage/internal/core/errors"
)

const screenPrefix = "TV_"

// List returns all known screen ids in sorted order. Fixed-width zero-padded
// suffixes make lexicographic order equal numeric order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: list screens: %v", coreerrors.ErrIO, err)
	}

	screens := []string{}
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), screenPrefix) {
			screens = append(screens, e.Name())
		}
	}
	sort.Strings(screens)
	return screens, nil
}

// Exists reports whether the screen's directory is present.
func (s *Store) Exists(screenID string) bool {
	info, err := os.Stat(s.screenDir(screenID))
	return err == nil && info.IsDir()
}

// Create allocates the smallest free screen number, creates its directory
// and an empty playlist document, and returns the new id. Fails with
// ErrCapacityExceeded when the registry is already full; the capacity check
// runs before any id search and nothing is created on failure.
func (s *Store) Create() (string, error) {
	existing, err := s.List()
	if err != nil {
		return "", err
	}
	if len(existing) >= domain.MaxScreens {
		return "", fmt.Errorf("%w: limit %d", coreerrors.ErrCapacityExceeded, domain.MaxScreens)
	}

	taken := make(map[int]bool, len(existing))
	for _, id := range existing {
		// Malformed directory names are skipped, not fatal.
		n, err := strconv.Atoi(strings.TrimPrefix(id, screenPrefix))
		if err != nil {
			continue
		}
		taken[n] = true
	}

	next := 1
	for taken[next] {
		next++
	}

	screenID := fmt.Sprintf("%s%03d", screenPrefix, next)
	if err := s.Write(screenID, nil); err != nil {
		return "", err
	}
	return screenID, nil
}
