package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/nfnt/resize"
)

// MakeThumbnail decodes an uploaded image and returns a JPEG thumbnail capped
// at maxWidth pixels. Formats the standard decoders cannot handle (webp)
// return an error; thumbnailing is best-effort at the call sites.
func MakeThumbnail(r io.Reader, filename string, maxWidth uint) ([]byte, error) {
	img, err := decodeImage(r, filename)
	if err != nil {
		return nil, err
	}

	thumb := resize.Thumbnail(maxWidth, maxWidth, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeImage(r io.Reader, filename string) (image.Image, error) {
	switch GetFileExtension(strings.ToLower(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".png":
		return png.Decode(r)
	default:
		return nil, errors.New("unsupported image format")
	}
}
