package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalFixture(t *testing.T) *LocalStorage {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return store
}

func TestLocalStorageRoundTrip(t *testing.T) {
	store := newLocalFixture(t)
	ctx := context.Background()

	resp, err := store.Upload(ctx, &UploadRequest{
		Key:    "uploads/abc/day_1/photo.jpg",
		Reader: strings.NewReader("image bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "uploads/abc/day_1/photo.jpg", resp.Key)
	assert.Equal(t, int64(len("image bytes")), resp.Size)
	assert.Equal(t, "http://localhost:8080/uploads/uploads/abc/day_1/photo.jpg", resp.URL)

	download, err := store.Download(ctx, "uploads/abc/day_1/photo.jpg")
	require.NoError(t, err)
	defer download.Reader.Close()

	data, err := io.ReadAll(download.Reader)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
	assert.Equal(t, "image/jpeg", download.ContentType)
}

func TestLocalStorageListFilesByPrefix(t *testing.T) {
	store := newLocalFixture(t)
	ctx := context.Background()

	for _, key := range []string{
		"uploads/abc/day_1/a.jpg",
		"uploads/abc/day_2/b.jpg",
		"uploads/xyz/day_1/c.jpg",
	} {
		_, err := store.Upload(ctx, &UploadRequest{Key: key, Reader: strings.NewReader("x")})
		require.NoError(t, err)
	}

	files, err := store.ListFiles(ctx, "uploads/abc/")
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, strings.HasPrefix(f.Key, "uploads/abc/"))
	}

	// Listing a prefix with no files is not an error
	files, err = store.ListFiles(ctx, "uploads/nothing/")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLocalStorageListFilesDayPrefixIsExact(t *testing.T) {
	store := newLocalFixture(t)
	ctx := context.Background()

	for _, key := range []string{
		"uploads/abc/day_1/a.jpg",
		"uploads/abc/day_10/z.jpg",
		"uploads/abc/day_11/y.jpg",
	} {
		_, err := store.Upload(ctx, &UploadRequest{Key: key, Reader: strings.NewReader("x")})
		require.NoError(t, err)
	}

	// The trailing slash scopes the listing to one day directory
	files, err := store.ListFiles(ctx, "uploads/abc/day_1/")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "uploads/abc/day_1/a.jpg", files[0].Key)
}

func TestLocalStorageDelete(t *testing.T) {
	store := newLocalFixture(t)
	ctx := context.Background()

	_, err := store.Upload(ctx, &UploadRequest{Key: "videos/abc/final_trip.mp4", Reader: strings.NewReader("mp4")})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "videos/abc/final_trip.mp4"))

	_, err = store.Download(ctx, "videos/abc/final_trip.mp4")
	assert.Error(t, err)
}
