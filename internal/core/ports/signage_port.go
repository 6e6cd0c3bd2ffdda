package ports

import "signage/internal/core/domain"

// SignageService is the main port used by the HTTP layer.
type SignageService interface {
	ListScreens() ([]string, error)
	CreateScreen() (string, error)
	GetPlaylist(screenID string) ([]domain.Slide, error)
	IngestDeck(screenID string, deck []byte) (int, error)
	IngestImage(screenID string, image []byte, filenameHint string, durationSeconds float64) (string, error)
	Reorder(screenID string, order []string) error
	SetDuration(screenID string, filename string, durationSeconds float64) error
	DeleteSlide(screenID string, filename string) error
	FetchAsset(screenID string, filename string) ([]byte, error)
}

// PlaylistRepository is the persistence port for playlist documents.
// Read returns an empty playlist (not an error) when no document exists yet.
type PlaylistRepository interface {
	Read(screenID string) ([]domain.Slide, error)
	Write(screenID string, slides []domain.Slide) error
	// WithScreen serializes read-modify-write sequences for one screen.
	// Operations on different screens stay fully independent.
	WithScreen(screenID string, fn func() error) error
}

// AssetRepository is the persistence port for normalized slide images and
// transient staging files.
type AssetRepository interface {
	// NextSequence returns the next asset number for a screen: count of
	// existing assets + 1. Callers must hold the screen lock across
	// NextSequence and the writes that consume it.
	NextSequence(screenID string) (int, error)
	SaveAsset(screenID, filename string, data []byte) error
	ReadAsset(screenID, filename string) ([]byte, error)
	DeleteAsset(screenID, filename string) error
	SaveStaging(screenID string, data []byte) (path string, err error)
	RemoveStaging(path string)
}

// ScreenRegistry enumerates and creates screens.
type ScreenRegistry interface {
	List() ([]string, error)
	Create() (string, error)
	Exists(screenID string) bool
}

// DeckExtractor turns an uploaded slide deck into one frame per slide.
// Per-slide failures are downgraded to placeholder frames, never returned.
type DeckExtractor interface {
	Extract(deck []byte) ([]domain.Frame, error)
}
