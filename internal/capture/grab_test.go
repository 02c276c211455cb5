package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(testImage(64, 48))
	if err != nil {
		t.Fatalf("EncodePNG() returned error: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("decoded size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

func TestPreviewDataURL(t *testing.T) {
	url, err := PreviewDataURL(testImage(640, 480))
	if err != nil {
		t.Fatalf("PreviewDataURL() returned error: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("preview should be a PNG data URL, got %q", url[:min(len(url), 40)])
	}
}

func TestPreviewDataURLScalesDown(t *testing.T) {
	url, err := PreviewDataURL(testImage(1920, 1080))
	if err != nil {
		t.Fatalf("PreviewDataURL() returned error: %v", err)
	}
	full, err := EncodePNG(testImage(1920, 1080))
	if err != nil {
		t.Fatal(err)
	}
	if len(url) >= len(full) {
		t.Error("preview should be substantially smaller than the full screenshot")
	}
}
