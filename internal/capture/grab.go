package capture

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/kbinani/screenshot"
)

// Grab captures the window's client area from screen. The region is clamped
// to the virtual screen so a window hanging partly off-screen still captures.
func Grab(w GameWindow) (image.Image, error) {
	bounds := w.Bounds.Intersect(virtualScreen())
	if bounds.Empty() {
		return nil, fmt.Errorf("window region %v is entirely off-screen", w.Bounds)
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture %v: %w", bounds, err)
	}
	return img, nil
}

// EncodePNG renders an image as PNG bytes for upload.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// virtualScreen returns the union of all active display bounds.
func virtualScreen() image.Rectangle {
	var union image.Rectangle
	for i := 0; i < screenshot.NumActiveDisplays(); i++ {
		union = union.Union(screenshot.GetDisplayBounds(i))
	}
	return union
}
