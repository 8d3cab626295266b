package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")

	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}

	return false
}

func IsImageFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedImageTypes)
}

// GenerateUploadFilename builds a collision-resistant name preserving the
// original extension, defaulting to .jpg when there is none.
func GenerateUploadFilename(originalFilename string) string {
	ext := GetFileExtension(originalFilename)
	if ext == "" {
		ext = ".jpg"
	}

	timestamp := time.Now().UTC().Format("20060102_150405")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")

	return fmt.Sprintf("%s_%s%s", timestamp, suffix, ext)
}
