package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// previewWidth is the thumbnail width shown in the activity log.
const previewWidth = 320

// PreviewDataURL scales an image down to a thumbnail and returns it as a
// base64 PNG data URL for direct embedding in the UI.
func PreviewDataURL(img image.Image) (string, error) {
	thumb := resize.Resize(previewWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return "", fmt.Errorf("encode preview: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
