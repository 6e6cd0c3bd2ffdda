package domain

// Target canvas every slide asset is normalized to.
const (
	TargetWidth  = 1920
	TargetHeight = 1080
)

// DefaultSlideDuration is used when an upload carries no duration and a deck
// slide has no timing metadata.
const DefaultSlideDuration = 5.0

// MaxScreens caps how many screens the registry will create.
const MaxScreens = 4

// AssetExt is the extension every normalized slide asset carries.
const AssetExt = ".jpg"

// Slide is one entry of a screen's playlist. Filename is the key used by
// reorder/duration/delete operations; element order is display order.
type Slide struct {
	Filename        string  `json:"filename"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// NewSlide creates a slide record, substituting the default duration for
// non-positive values.
func NewSlide(filename string, durationSeconds float64) Slide {
	if durationSeconds <= 0 {
		durationSeconds = DefaultSlideDuration
	}
	return Slide{Filename: filename, DurationSeconds: durationSeconds}
}

// Frame is one extracted deck slide: normalized-or-raw image bytes plus an
// optional duration hint in seconds. A nil hint means "use the default".
type Frame struct {
	Image        []byte
	DurationHint *float64
}
