package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleEmptyImageList(t *testing.T) {
	assembler := NewFFmpegAssembler(24)
	outPath := filepath.Join(t.TempDir(), "out.mp4")

	err := assembler.Assemble(context.Background(), nil, outPath, 3)

	assert.ErrorIs(t, err, ErrNoImages)
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUnavailableAssembler(t *testing.T) {
	assembler := Unavailable{}

	err := assembler.Assemble(context.Background(), []string{"a.jpg"}, "out.mp4", 3)
	assert.ErrorIs(t, err, ErrEncoderUnavailable)

	err = assembler.Assemble(context.Background(), nil, "out.mp4", 3)
	assert.ErrorIs(t, err, ErrNoImages)
}

func TestWriteConcatList(t *testing.T) {
	listPath, err := writeConcatList([]string{"/tmp/0000.jpg", "/tmp/0001.jpg"}, 2.5)
	require.NoError(t, err)
	defer os.Remove(listPath)

	data, err := os.ReadFile(listPath)
	require.NoError(t, err)

	expected := "file '/tmp/0000.jpg'\nduration 2.5\n" +
		"file '/tmp/0001.jpg'\nduration 2.5\n" +
		"file '/tmp/0001.jpg'\n"
	assert.Equal(t, expected, string(data))
}

func TestNewFFmpegAssemblerDefaultsFrameRate(t *testing.T) {
	assert.Equal(t, 24, NewFFmpegAssembler(0).frameRate)
	assert.Equal(t, 30, NewFFmpegAssembler(30).frameRate)
}
