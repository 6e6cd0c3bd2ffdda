package services

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"signage/internal/core/domain"
	coreerrors "signage/internal/core/errors"
	"signage/internal/core/ports"
	"signage/internal/imaging"
	"signage/pkg/utils"
)

// imageExtensions is the upload allow-list for single-image ingestion.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// SignageServiceImpl is the default implementation of SignageService. It
// coordinates deck extraction, image normalization and playlist updates.
// All mutations for one screen run under that screen's repository lock, so
// the count-based asset numbering and the read-modify-write of the playlist
// document cannot interleave across requests.
type SignageServiceImpl struct {
	playlists ports.PlaylistRepository
	assets    ports.AssetRepository
	screens   ports.ScreenRegistry
	extractor ports.DeckExtractor
	log       *zap.Logger
}

// NewSignageService constructs a new SignageServiceImpl.
func NewSignageService(
	playlists ports.PlaylistRepository,
	assets ports.AssetRepository,
	screens ports.ScreenRegistry,
	extractor ports.DeckExtractor,
	log *zap.Logger,
) *SignageServiceImpl {
	return &SignageServiceImpl{
		playlists: playlists,
		assets:    assets,
		screens:   screens,
		extractor: extractor,
		log:       log,
	}
}

// ListScreens returns all known screen ids in sorted order.
func (s *SignageServiceImpl) ListScreens() ([]string, error) {
	return s.screens.List()
}

// CreateScreen allocates a new screen, or fails with ErrCapacityExceeded.
func (s *SignageServiceImpl) CreateScreen() (string, error) {
	id, err := s.screens.Create()
	if err != nil {
		return "", err
	}
	s.log.Info("screen created", zap.String("screen_id", id))
	return id, nil
}

// GetPlaylist returns the screen's playlist in display order. A screen with
// no playlist document yet yields an empty playlist. This is the display
// poll path and never takes the screen lock.
func (s *SignageServiceImpl) GetPlaylist(screenID string) ([]domain.Slide, error) {
	if !utils.IsScreenID(screenID) {
		return nil, coreerrors.ErrInvalidScreenID
	}
	return s.playlists.Read(screenID)
}

// IngestDeck converts every slide of an uploaded deck into a normalized
// asset and appends the resulting records to the playlist in one batch.
// Returns the number of slides added.
//
// The raw deck is spooled to a staging file that is removed whether or not
// ingestion succeeds. Assets written before a mid-batch failure are not
// rolled back; ingestion is best-effort.
func (s *SignageServiceImpl) IngestDeck(screenID string, deckBytes []byte) (int, error) {
	if !utils.IsScreenID(screenID) {
		return 0, coreerrors.ErrInvalidScreenID
	}
	if !s.screens.Exists(screenID) {
		return 0, fmt.Errorf("%w: screen %s", coreerrors.ErrNotFound, screenID)
	}

	staging, err := s.assets.SaveStaging(screenID, deckBytes)
	if err != nil {
		return 0, err
	}
	defer s.assets.RemoveStaging(staging)

	frames, err := s.extractor.Extract(deckBytes)
	if err != nil {
		return 0, err
	}

	added := 0
	err = s.playlists.WithScreen(screenID, func() error {
		next, err := s.assets.NextSequence(screenID)
		if err != nil {
			return err
		}

		records := make([]domain.Slide, 0, len(frames))
		for i, frame := range frames {
			normalized, err := imaging.Normalize(frame.Image, domain.TargetWidth, domain.TargetHeight)
			if err != nil {
				// Failure stays isolated to this slide.
				s.log.Warn("slide normalization failed, using placeholder",
					zap.String("screen_id", screenID),
					zap.Int("slide", i+1),
					zap.Error(err))
				normalized = imaging.Blank(domain.TargetWidth, domain.TargetHeight, imaging.ErrorFill)
			}

			filename := strconv.Itoa(next+i) + domain.AssetExt
			if err := s.assets.SaveAsset(screenID, filename, normalized); err != nil {
				return err
			}

			duration := domain.DefaultSlideDuration
			if frame.DurationHint != nil {
				duration = *frame.DurationHint
			}
			records = append(records, domain.NewSlide(filename, duration))
		}

		current, err := s.playlists.Read(screenID)
		if err != nil {
			return err
		}
		if err := s.playlists.Write(screenID, append(current, records...)); err != nil {
			return err
		}
		added = len(records)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("deck ingested",
		zap.String("screen_id", screenID),
		zap.Int("slides_added", added))
	return added, nil
}

// IngestImage normalizes a single uploaded image and appends one record to
// the playlist. The filename hint is only used to validate the upload's
// extension; the stored name is the screen's next sequence number.
func (s *SignageServiceImpl) IngestImage(screenID string, image []byte, filenameHint string, durationSeconds float64) (string, error) {
	if !utils.IsScreenID(screenID) {
		return "", coreerrors.ErrInvalidScreenID
	}
	if !s.screens.Exists(screenID) {
		return "", fmt.Errorf("%w: screen %s", coreerrors.ErrNotFound, screenID)
	}
	ext := strings.ToLower(filepath.Ext(filenameHint))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("%w: file type %q not allowed", coreerrors.ErrValidation, ext)
	}

	normalized, err := imaging.Normalize(image, domain.TargetWidth, domain.TargetHeight)
	if err != nil {
		return "", err
	}

	var filename string
	err = s.playlists.WithScreen(screenID, func() error {
		next, err := s.assets.NextSequence(screenID)
		if err != nil {
			return err
		}
		filename = strconv.Itoa(next) + domain.AssetExt

		if err := s.assets.SaveAsset(screenID, filename, normalized); err != nil {
			return err
		}

		current, err := s.playlists.Read(screenID)
		if err != nil {
			return err
		}
		return s.playlists.Write(screenID, append(current, domain.NewSlide(filename, durationSeconds)))
	})
	if err != nil {
		return "", err
	}

	s.log.Info("image ingested",
		zap.String("screen_id", screenID),
		zap.String("filename", filename))
	return filename, nil
}

// Reorder rebuilds the playlist to match the requested filename order.
// Unknown filenames are skipped; current slides omitted from the request are
// dropped, so a strict subset doubles as a mass delete of the rest.
func (s *SignageServiceImpl) Reorder(screenID string, order []string) error {
	if !utils.IsScreenID(screenID) {
		return coreerrors.ErrInvalidScreenID
	}

	return s.playlists.WithScreen(screenID, func() error {
		current, err := s.playlists.Read(screenID)
		if err != nil {
			return err
		}

		reordered := make([]domain.Slide, 0, len(current))
		for _, filename := range order {
			for _, slide := range current {
				if slide.Filename == filename {
					reordered = append(reordered, slide)
					break
				}
			}
		}
		return s.playlists.Write(screenID, reordered)
	})
}

// SetDuration updates the display duration of the first slide matching
// filename. Silently does nothing when no slide matches.
func (s *SignageServiceImpl) SetDuration(screenID, filename string, durationSeconds float64) error {
	if !utils.IsScreenID(screenID) {
		return coreerrors.ErrInvalidScreenID
	}
	if durationSeconds <= 0 {
		return fmt.Errorf("%w: duration must be positive", coreerrors.ErrValidation)
	}

	return s.playlists.WithScreen(screenID, func() error {
		current, err := s.playlists.Read(screenID)
		if err != nil {
			return err
		}
		for i := range current {
			if current[i].Filename == filename {
				current[i].DurationSeconds = durationSeconds
				break
			}
		}
		return s.playlists.Write(screenID, current)
	})
}

// DeleteSlide removes every record matching filename from the playlist,
// then deletes the asset file. Asset removal is best-effort: a failure is
// logged but does not fail the operation.
func (s *SignageServiceImpl) DeleteSlide(screenID, filename string) error {
	if !utils.IsScreenID(screenID) {
		return coreerrors.ErrInvalidScreenID
	}
	if err := validFilename(filename); err != nil {
		return err
	}

	return s.playlists.WithScreen(screenID, func() error {
		current, err := s.playlists.Read(screenID)
		if err != nil {
			return err
		}

		kept := make([]domain.Slide, 0, len(current))
		for _, slide := range current {
			if slide.Filename != filename {
				kept = append(kept, slide)
			}
		}
		if err := s.playlists.Write(screenID, kept); err != nil {
			return err
		}

		if err := s.assets.DeleteAsset(screenID, filename); err != nil {
			s.log.Warn("asset removal failed",
				zap.String("screen_id", screenID),
				zap.String("filename", filename),
				zap.Error(err))
		}
		return nil
	})
}

// FetchAsset returns the bytes of one normalized slide image.
func (s *SignageServiceImpl) FetchAsset(screenID, filename string) ([]byte, error) {
	if !utils.IsScreenID(screenID) {
		return nil, coreerrors.ErrInvalidScreenID
	}
	if err := validFilename(filename); err != nil {
		return nil, err
	}
	return s.assets.ReadAsset(screenID, filename)
}

// validFilename rejects names that could escape a screen's directory.
func validFilename(filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return fmt.Errorf("%w: invalid filename %q", coreerrors.ErrValidation, filename)
	}
	return nil
}
