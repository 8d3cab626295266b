package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FFmpegAssembler encodes image sequences with the ffmpeg binary via the
// concat demuxer. Assembly is CPU-bound and blocking; callers decide where it
// is safe to run.
type FFmpegAssembler struct {
	frameRate int
}

func NewFFmpegAssembler(frameRate int) *FFmpegAssembler {
	if frameRate <= 0 {
		frameRate = 24
	}
	return &FFmpegAssembler{frameRate: frameRate}
}

func (f *FFmpegAssembler) Assemble(ctx context.Context, images []string, outPath string, secondsPerImage float64) error {
	if len(images) == 0 {
		return ErrNoImages
	}
	if secondsPerImage <= 0 {
		secondsPerImage = 3
	}

	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrEncoderUnavailable
	}

	listPath, err := writeConcatList(images, secondsPerImage)
	if err != nil {
		return fmt.Errorf("failed to write concat list: %w", err)
	}
	defer os.Remove(listPath)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	err = ffmpeg.Input(listPath, ffmpeg.KwArgs{"f": "concat", "safe": "0"}).
		Output(outPath, ffmpeg.KwArgs{
			"r":       f.frameRate,
			"c:v":     "libx264",
			"pix_fmt": "yuv420p",
			"an":      "",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg encode failed: %w", err)
	}

	return nil
}

// writeConcatList emits a concat-demuxer script. The final image is repeated
// without a duration because the demuxer ignores the last duration directive.
func writeConcatList(images []string, secondsPerImage float64) (string, error) {
	tmp, err := os.CreateTemp("", "recap_*.txt")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, img := range images {
		fmt.Fprintf(&b, "file '%s'\nduration %g\n", escapeConcatPath(img), secondsPerImage)
	}
	fmt.Fprintf(&b, "file '%s'\n", escapeConcatPath(images[len(images)-1]))

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

func escapeConcatPath(p string) string {
	return strings.ReplaceAll(p, "'", `'\''`)
}
