package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUploadFilename(t *testing.T) {
	name := GenerateUploadFilename("holiday snap.PNG")
	assert.True(t, strings.HasSuffix(name, ".png"))

	// No extension defaults to .jpg
	name = GenerateUploadFilename("holiday")
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	// Two names generated back to back never collide
	assert.NotEqual(t, GenerateUploadFilename("a.jpg"), GenerateUploadFilename("a.jpg"))
}

func TestIsImageFile(t *testing.T) {
	assert.True(t, IsImageFile("photo.jpg"))
	assert.True(t, IsImageFile("photo.JPEG"))
	assert.True(t, IsImageFile("photo.webp"))
	assert.False(t, IsImageFile("notes.txt"))
	assert.False(t, IsImageFile("archive.mp4"))
	assert.False(t, IsImageFile("noextension"))
}

func TestGetFileExtension(t *testing.T) {
	assert.Equal(t, ".jpg", GetFileExtension("a.JPG"))
	assert.Equal(t, "", GetFileExtension("noext"))
	assert.Equal(t, ".gz", GetFileExtension("a.tar.gz"))
}
