package extractor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"github.com/disintegration/imaging"
)

const (
	// DefaultMaxImageDimension bounds request size while keeping odds text
	// readable for the vision model.
	DefaultMaxImageDimension = 1024

	jpegQuality = 80
)

// OptimizeImage decodes a screenshot (PNG or JPEG), downscales it so neither
// dimension exceeds maxDim while preserving aspect ratio, and returns the
// result as a base64 JPEG data URI ready for the API.
func OptimizeImage(data []byte, maxDim int) (string, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxImageDimension
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
