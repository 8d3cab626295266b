package media

import (
	"context"
	"errors"
)

// ErrEncoderUnavailable is returned when no video encoder is present in the
// runtime. It surfaces at call time so the rest of the system stays usable.
var ErrEncoderUnavailable = errors.New("video encoder not available")

// ErrNoImages is returned for an empty input sequence.
var ErrNoImages = errors.New("no images to assemble")

// Assembler turns an ordered list of still images into a single video, one
// clip per image, concatenated in input order with no transitions or audio.
type Assembler interface {
	Assemble(ctx context.Context, images []string, outPath string, secondsPerImage float64) error
}
