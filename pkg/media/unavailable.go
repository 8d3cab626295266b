package media

import "context"

// Unavailable is the assembler used when video encoding is disabled or no
// encoder exists. Every call fails loudly instead of raising deep inside a
// request handler.
type Unavailable struct{}

func (Unavailable) Assemble(ctx context.Context, images []string, outPath string, secondsPerImage float64) error {
	if len(images) == 0 {
		return ErrNoImages
	}
	return ErrEncoderUnavailable
}
