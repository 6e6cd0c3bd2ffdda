// Package imaging converts arbitrary uploaded images into uniform slide
// assets: scale preserving aspect ratio, letterbox onto a black canvas,
// encode as JPEG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	// Register decoders for the allowed upload formats.
	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	coreerrors "signage/internal/core/errors"
)

// Quality is the fixed JPEG encode quality for all slide assets.
const Quality = 90

// Placeholder fills for generated frames. White marks a deck slide with no
// embedded image, light gray marks a slide whose processing failed, so an
// operator can tell the two apart on screen.
var (
	NoImageFill color.Color = color.White
	ErrorFill   color.Color = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
)

// Normalize decodes raw and letterboxes it onto a targetWidth x targetHeight
// black canvas: fit to width when the source is proportionally wider than the
// target, fit to height otherwise, centered with floor offsets. The output is
// always exactly the target size.
func Normalize(raw []byte, targetWidth, targetHeight int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", coreerrors.ErrDecode, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty image", coreerrors.ErrDecode)
	}

	imgRatio := float64(w) / float64(h)
	targetRatio := float64(targetWidth) / float64(targetHeight)

	var newW, newH int
	if imgRatio > targetRatio {
		newW = targetWidth
		newH = int(float64(targetWidth) / imgRatio)
	} else {
		newH = targetHeight
		newW = int(float64(targetHeight) * imgRatio)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, xdraw.Src)

	offX := (targetWidth - newW) / 2
	offY := (targetHeight - newH) / 2
	dst := image.Rect(offX, offY, offX+newW, offY+newH)
	xdraw.CatmullRom.Scale(canvas, dst, src, b, xdraw.Over, nil)

	return encodeJPEG(canvas)
}

// Blank returns a solid-fill JPEG frame of the given size. Used for deck
// slides that carry no embedded image (white) and slides whose extraction
// failed (light gray).
func Blank(width, height int, fill color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, xdraw.Src)

	// Encoding a uniform RGBA image cannot fail.
	out, _ := encodeJPEG(img)
	return out
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
