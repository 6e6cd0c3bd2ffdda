package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	coreerrors "signage/internal/core/errors"
)

// solidPNG builds a PNG of the given size filled with one color.
func solidPNG(t *testing.T, w, h int, fill color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode normalized output: %v", err)
	}
	return img
}

// near reports whether a pixel is within JPEG-compression distance of want.
func near(got, want color.Color) bool {
	const tolerance = 20
	gr, gg, gb, _ := got.RGBA()
	wr, wg, wb, _ := want.RGBA()
	diff := func(a, b uint32) int {
		d := int(a>>8) - int(b>>8)
		if d < 0 {
			d = -d
		}
		return d
	}
	return diff(gr, wr) <= tolerance && diff(gg, wg) <= tolerance && diff(gb, wb) <= tolerance
}

func TestNormalize_OutputAlwaysTargetSize(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"wider than target", 200, 100},
		{"taller than target", 100, 200},
		{"exactly target ratio", 160, 90},
		{"tiny", 1, 1},
		{"already target size", 1920, 1080},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := solidPNG(t, c.w, c.h, color.RGBA{R: 0xff, A: 0xff})
			out, err := Normalize(src, 1920, 1080)
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}

			img := decodeJPEG(t, out)
			b := img.Bounds()
			if b.Dx() != 1920 || b.Dy() != 1080 {
				t.Fatalf("expected 1920x1080 output, got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

// A 200x100 source is proportionally wider than 16:9, so it is fit to width:
// content becomes 1920x960 centered with 60px black bars top and bottom.
func TestNormalize_WideImageLetterboxedTopAndBottom(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	src := solidPNG(t, 200, 100, red)

	out, err := Normalize(src, 1920, 1080)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	img := decodeJPEG(t, out)

	// Inside the top and bottom bars: black.
	if !near(img.At(960, 30), color.Black) {
		t.Errorf("expected black bar at (960,30), got %v", img.At(960, 30))
	}
	if !near(img.At(960, 1050), color.Black) {
		t.Errorf("expected black bar at (960,1050), got %v", img.At(960, 1050))
	}
	// Just inside the content area: red.
	if !near(img.At(960, 70), red) {
		t.Errorf("expected content at (960,70), got %v", img.At(960, 70))
	}
	if !near(img.At(960, 540), red) {
		t.Errorf("expected content at center, got %v", img.At(960, 540))
	}
}

// A 100x200 source is proportionally taller than 16:9, so it is fit to
// height: content becomes 540x1080 centered with 690px black bars each side.
func TestNormalize_TallImageLetterboxedLeftAndRight(t *testing.T) {
	blue := color.RGBA{B: 0xff, A: 0xff}
	src := solidPNG(t, 100, 200, blue)

	out, err := Normalize(src, 1920, 1080)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	img := decodeJPEG(t, out)

	if !near(img.At(300, 540), color.Black) {
		t.Errorf("expected black bar at (300,540), got %v", img.At(300, 540))
	}
	if !near(img.At(1620, 540), color.Black) {
		t.Errorf("expected black bar at (1620,540), got %v", img.At(1620, 540))
	}
	if !near(img.At(960, 540), blue) {
		t.Errorf("expected content at center, got %v", img.At(960, 540))
	}
}

// An image already at target size must come back with no visible border.
func TestNormalize_TargetSizeSourceHasNoBorder(t *testing.T) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	src := solidPNG(t, 1920, 1080, white)

	out, err := Normalize(src, 1920, 1080)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	img := decodeJPEG(t, out)

	corners := []image.Point{{0, 0}, {1919, 0}, {0, 1079}, {1919, 1079}}
	for _, p := range corners {
		if !near(img.At(p.X, p.Y), white) {
			t.Errorf("expected white corner at %v, got %v", p, img.At(p.X, p.Y))
		}
	}
}

func TestNormalize_UnreadableInputFailsWithDecodeError(t *testing.T) {
	_, err := Normalize([]byte("not an image"), 1920, 1080)
	if err == nil {
		t.Fatal("expected error for unreadable input")
	}
	if !errors.Is(err, coreerrors.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestBlank_ProducesDecodableFrameAtRequestedSize(t *testing.T) {
	out := Blank(1920, 1080, color.White)
	img := decodeJPEG(t, out)

	b := img.Bounds()
	if b.Dx() != 1920 || b.Dy() != 1080 {
		t.Fatalf("expected 1920x1080 frame, got %dx%d", b.Dx(), b.Dy())
	}
	if !near(img.At(960, 540), color.White) {
		t.Errorf("expected white fill, got %v", img.At(960, 540))
	}
}
