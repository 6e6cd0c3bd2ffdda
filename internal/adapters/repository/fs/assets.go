package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"signage/internal/core/domain"
	coreerrors "signage/internal/core/errors"
)

// stagingFile is the transient name deck uploads are spooled to before
// extraction. Removed after every ingestion attempt, successful or not.
const stagingFile = "temp_upload.pptx"

// NextSequence returns the next sequential asset number for a screen:
// count of existing assets + 1.
func (s *Store) NextSequence(screenID string) (int, error) {
	entries, err := os.ReadDir(s.screenDir(screenID))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: screen %s", coreerrors.ErrNotFound, screenID)
		}
		return 0, fmt.Errorf("%w: scan assets for %s: %v", coreerrors.ErrIO, screenID, err)
	}

	count := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), domain.AssetExt) {
			count++
		}
	}
	return count + 1, nil
}

// SaveAsset writes a normalized image under the screen's directory.
func (s *Store) SaveAsset(screenID, filename string, data []byte) error {
	path := filepath.Join(s.screenDir(screenID), filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write asset %s/%s: %v", coreerrors.ErrIO, screenID, filename, err)
	}
	return nil
}

// ReadAsset returns the bytes of one normalized asset.
func (s *Store) ReadAsset(screenID, filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.screenDir(screenID), filename))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: asset %s/%s", coreerrors.ErrNotFound, screenID, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read asset %s/%s: %v", coreerrors.ErrIO, screenID, filename, err)
	}
	return data, nil
}

// DeleteAsset removes an asset file. A missing file is not an error; the
// delete contract is best-effort.
func (s *Store) DeleteAsset(screenID, filename string) error {
	err := os.Remove(filepath.Join(s.screenDir(screenID), filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: delete asset %s/%s: %v", coreerrors.ErrIO, screenID, filename, err)
	}
	return nil
}

// SaveStaging spools uploaded deck bytes next to the screen's assets and
// returns the staging path.
func (s *Store) SaveStaging(screenID string, data []byte) (string, error) {
	path := filepath.Join(s.screenDir(screenID), stagingFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: stage deck for %s: %v", coreerrors.ErrIO, screenID, err)
	}
	return path, nil
}

// RemoveStaging deletes a staging file, ignoring errors.
func (s *Store) RemoveStaging(path string) {
	_ = os.Remove(path)
}
