// Package deck extracts one displayable frame per slide from an uploaded
// PowerPoint file. A .pptx is a zip archive: slides live under
// ppt/slides/slideN.xml, each with a relationships file resolving embedded
// image references to ppt/media entries.
//
// This is a best-effort visual-content sampler, not a renderer: the first
// embedded raster image of a slide stands in for the whole slide. Slides
// without an image become a white placeholder frame; slides whose extraction
// fails become a light-gray one, so operators can tell the two apart.
package deck

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"signage/internal/core/domain"
	coreerrors "signage/internal/core/errors"
	"signage/internal/imaging"
)

var slidePathRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Extractor extracts frames from pptx decks.
type Extractor struct{}

// New returns a pptx Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns one frame per slide, in presentation order. Per-slide
// failures are isolated: the slide becomes an error placeholder and the rest
// of the deck is still processed. A deck that is not a readable archive, or
// contains no slides at all, fails with ErrDecode.
func (e *Extractor) Extract(deck []byte) ([]domain.Frame, error) {
	zr, err := zip.NewReader(bytes.NewReader(deck), int64(len(deck)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", coreerrors.ErrDecode, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	slides := slidePaths(files)
	if len(slides) == 0 {
		return nil, fmt.Errorf("%w: no slides in deck", coreerrors.ErrDecode)
	}

	frames := make([]domain.Frame, 0, len(slides))
	for _, slidePath := range slides {
		frames = append(frames, extractSlide(files, slidePath))
	}
	return frames, nil
}

// slidePaths returns ppt/slides/slideN.xml entries sorted by N.
func slidePaths(files map[string]*zip.File) []string {
	type numbered struct {
		path string
		n    int
	}
	var found []numbered
	for name := range files {
		m := slidePathRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, numbered{path: name, n: n})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })

	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = f.path
	}
	return paths
}

func extractSlide(files map[string]*zip.File, slidePath string) domain.Frame {
	body, err := readZipFile(files[slidePath])
	if err != nil {
		return errorFrame(nil)
	}

	embedID, hint := scanSlideXML(body)
	if embedID == "" {
		return domain.Frame{
			Image:        imaging.Blank(domain.TargetWidth, domain.TargetHeight, imaging.NoImageFill),
			DurationHint: hint,
		}
	}

	img, err := resolveImage(files, slidePath, embedID)
	if err != nil {
		return errorFrame(hint)
	}
	return domain.Frame{Image: img, DurationHint: hint}
}

func errorFrame(hint *float64) domain.Frame {
	return domain.Frame{
		Image:        imaging.Blank(domain.TargetWidth, domain.TargetHeight, imaging.ErrorFill),
		DurationHint: hint,
	}
}

// scanSlideXML walks the slide document and returns the relationship id of
// the first embedded image reference (first-match policy) plus the slide's
// auto-advance timing converted from milliseconds to seconds, if set.
func scanSlideXML(body []byte) (embedID string, hint *float64) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "blip":
			if embedID != "" {
				continue
			}
			for _, attr := range start.Attr {
				if attr.Name.Local == "embed" && attr.Value != "" {
					embedID = attr.Value
					break
				}
			}
		case "transition":
			for _, attr := range start.Attr {
				if attr.Name.Local != "advTm" {
					continue
				}
				if ms, err := strconv.ParseFloat(attr.Value, 64); err == nil {
					secs := ms / 1000.0
					hint = &secs
				}
			}
		}
	}
	return embedID, hint
}

type relationships struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// resolveImage maps a relationship id through the slide's .rels file to a
// media entry and returns its bytes.
func resolveImage(files map[string]*zip.File, slidePath, embedID string) ([]byte, error) {
	relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
	body, err := readZipFile(files[relsPath])
	if err != nil {
		return nil, err
	}

	var rels relationships
	if err := xml.Unmarshal(body, &rels); err != nil {
		return nil, err
	}

	for _, rel := range rels.Rels {
		if rel.ID != embedID {
			continue
		}
		// Targets are relative to the slide directory, e.g. "../media/image1.png".
		target := strings.TrimPrefix(rel.Target, "/")
		mediaPath := path.Clean(path.Join(path.Dir(slidePath), target))
		return readZipFile(files[mediaPath])
	}
	return nil, fmt.Errorf("relationship %s not found in %s", embedID, relsPath)
}

func readZipFile(f *zip.File) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("missing archive entry")
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
