// Package photo normalizes uploaded images to the fixed policy every
// stored photo follows: JPEG, width clamped to 800px, quality 80.
package photo

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"

	// WebP uploads decode through the standard image registry.
	_ "golang.org/x/image/webp"
)

var ErrUnsupported = errors.New("unsupported image")

const (
	// MaxWidth is the clamp applied to every photo. Narrower images are
	// never enlarged.
	MaxWidth = 800
	// Quality is the JPEG quality factor used for re-encoding.
	Quality = 80
)

// ContentType is the media type of every normalized photo.
const ContentType = "image/jpeg"

// Normalize decodes data, scales it down to MaxWidth if it is wider
// (aspect ratio preserved) and re-encodes it as JPEG at the fixed
// quality. The bytes decide decodability; the declared contentType is
// carried into the error for context only, since browsers routinely
// send application/octet-stream. Deterministic for identical input
// bytes and library version.
func Normalize(data []byte, contentType string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrUnsupported, contentType, err)
	}

	if img.Bounds().Dx() > MaxWidth {
		img = imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
