package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"roadtrip/internal/models"
	"roadtrip/internal/utils"
	"roadtrip/pkg/logger"
	"roadtrip/pkg/media"
	"roadtrip/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTripRepo struct {
	trips map[primitive.ObjectID]*models.Trip
}

func newFakeTripRepo(trips ...*models.Trip) *fakeTripRepo {
	repo := &fakeTripRepo{trips: make(map[primitive.ObjectID]*models.Trip)}
	for _, trip := range trips {
		repo.trips[trip.ID] = trip
	}
	return repo
}

func (f *fakeTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	if trip.ID.IsZero() {
		trip.ID = primitive.NewObjectID()
	}
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) GetByOwner(ctx context.Context, id, userID primitive.ObjectID) (*models.Trip, error) {
	trip, ok := f.trips[id]
	if !ok || trip.UserID != userID {
		return nil, &utils.NotFoundError{Resource: "trip"}
	}
	return trip, nil
}

func (f *fakeTripRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Trip, error) {
	var trips []*models.Trip
	for _, trip := range f.trips {
		if trip.UserID == userID {
			trips = append(trips, trip)
		}
	}
	return trips, nil
}

func (f *fakeTripRepo) UpdateRoute(ctx context.Context, id, userID primitive.ObjectID, route *models.RouteSnapshot) error {
	trip, err := f.GetByOwner(ctx, id, userID)
	if err != nil {
		return err
	}
	trip.Route = route
	return nil
}

func (f *fakeTripRepo) UpdateItinerary(ctx context.Context, id, userID primitive.ObjectID, items []models.ItineraryItem) error {
	trip, err := f.GetByOwner(ctx, id, userID)
	if err != nil {
		return err
	}
	trip.Itinerary = items
	return nil
}

func (f *fakeTripRepo) Publish(ctx context.Context, id, userID primitive.ObjectID) error {
	trip, err := f.GetByOwner(ctx, id, userID)
	if err != nil {
		return err
	}
	trip.Published = true
	trip.Visibility = models.VisibilityPublic
	return nil
}

func (f *fakeTripRepo) ListPublished(ctx context.Context, limit int64) ([]*models.Trip, error) {
	var trips []*models.Trip
	for _, trip := range f.trips {
		if trip.Published {
			trips = append(trips, trip)
		}
	}
	return trips, nil
}

type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	data, err := io.ReadAll(request.Reader)
	if err != nil {
		return nil, err
	}
	f.files[request.Key] = data
	return &storage.UploadResponse{Key: request.Key, Size: int64(len(data))}, nil
}

func (f *fakeStorage) Download(ctx context.Context, key string) (*storage.DownloadResponse, error) {
	data, ok := f.files[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &storage.DownloadResponse{
		Reader: io.NopCloser(bytes.NewReader(data)),
		Size:   int64(len(data)),
	}, nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.files, key)
	return nil
}

func (f *fakeStorage) ListFiles(ctx context.Context, prefix string) ([]*storage.FileInfo, error) {
	var files []*storage.FileInfo
	for key, data := range f.files {
		if strings.HasPrefix(key, prefix) {
			files = append(files, &storage.FileInfo{Key: key, Size: int64(len(data))})
		}
	}
	return files, nil
}

type fakeAssembler struct {
	calls           int
	images          []string
	secondsPerImage float64
	err             error
}

func (f *fakeAssembler) Assemble(ctx context.Context, images []string, outPath string, secondsPerImage float64) error {
	f.calls++
	f.images = append([]string(nil), images...)
	f.secondsPerImage = secondsPerImage
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("mp4"), 0644)
}

func testLogger(t *testing.T) *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: "error"})
	require.NoError(t, err)
	return log
}

func newVlogFixture(t *testing.T) (*VlogService, *fakeTripRepo, *fakeStorage, *fakeAssembler, *models.Trip) {
	trip := &models.Trip{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID()}
	repo := newFakeTripRepo(trip)
	store := newFakeStorage()
	assembler := &fakeAssembler{}
	svc := NewVlogService(repo, store, assembler, testLogger(t))
	return svc, repo, store, assembler, trip
}

func TestPromptsBaseList(t *testing.T) {
	svc, _, _, _, _ := newVlogFixture(t)

	prompts := svc.Prompts("Scenic Explorer")

	require.Len(t, prompts, 7)
	assert.Equal(t, "Start of day", prompts[0].Phase)
	assert.Equal(t, "Quick selfie before hitting the road", prompts[0].Prompt)
	assert.Equal(t, "Night", prompts[6].Phase)
}

func TestPromptsTemplateOverrides(t *testing.T) {
	svc, _, _, _, _ := newVlogFixture(t)

	foodie := svc.Prompts(TemplateFoodieTrail)
	assert.Equal(t, "Plate shot + menu board + ambience (3s)", foodie[3].Prompt)

	family := svc.Prompts(TemplateFamilyMemories)
	assert.Equal(t, "Family selfie + a fun moment (3s)", family[0].Prompt)

	ev := svc.Prompts(TemplateEVRoadTrip)
	assert.Equal(t, "Charging shot + connector close-up (3s)", ev[4].Prompt)

	// An unrecognized template returns the base list untouched
	base := svc.Prompts("Scenic Explorer")
	unknown := svc.Prompts("Astral Projection")
	assert.Equal(t, base, unknown)
}

func makeFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File[field][0]
}

func TestUploadImageStoresUnderDayPrefix(t *testing.T) {
	svc, _, store, _, trip := newVlogFixture(t)

	header := makeFileHeader(t, "file", "holiday.jpg", []byte("not a real jpeg"))
	resp, err := svc.UploadImage(context.Background(), trip.ID, trip.UserID, 2, header)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Key, "uploads/"+trip.ID.Hex()+"/day_2/"))
	assert.True(t, strings.HasSuffix(resp.Key, ".jpg"))
	assert.Contains(t, store.files, resp.Key)
}

func TestUploadImageRejectsForeignTrip(t *testing.T) {
	svc, _, _, _, trip := newVlogFixture(t)

	header := makeFileHeader(t, "file", "holiday.jpg", []byte("x"))
	_, err := svc.UploadImage(context.Background(), trip.ID, primitive.NewObjectID(), 1, header)

	assert.True(t, utils.IsNotFound(err))
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	svc, _, _, _, trip := newVlogFixture(t)

	header := &multipart.FileHeader{Filename: "big.jpg", Size: utils.MaxImageSize + 1}
	_, err := svc.UploadImage(context.Background(), trip.ID, trip.UserID, 1, header)

	assert.True(t, utils.IsValidation(err))
}

func TestRenderDailyNoImages(t *testing.T) {
	svc, _, _, assembler, trip := newVlogFixture(t)

	_, err := svc.RenderDaily(context.Background(), trip.ID, trip.UserID, 1, 0)

	assert.True(t, utils.IsValidation(err))
	assert.Equal(t, 0, assembler.calls)
}

func TestRenderDailyAssemblesSortedImages(t *testing.T) {
	svc, _, store, assembler, trip := newVlogFixture(t)

	prefix := "uploads/" + trip.ID.Hex() + "/day_1/"
	store.files[prefix+"20240101_090000_b.jpg"] = []byte("b")
	store.files[prefix+"20240101_080000_a.jpg"] = []byte("a")
	store.files[prefix+"thumbs/20240101_080000_a.jpg"] = []byte("t")
	store.files[prefix+"notes.txt"] = []byte("n")

	resp, err := svc.RenderDaily(context.Background(), trip.ID, trip.UserID, 1, 0)

	require.NoError(t, err)
	assert.Equal(t, "/videos/"+trip.ID.Hex()+"/day_1_recap.mp4", resp.Video)
	assert.Contains(t, store.files, "videos/"+trip.ID.Hex()+"/day_1_recap.mp4")

	// Thumbnails and non-image files are excluded; order follows key order
	require.Len(t, assembler.images, 2)
	assert.Equal(t, "0000.jpg", filepath.Base(assembler.images[0]))
	assert.Equal(t, "0001.jpg", filepath.Base(assembler.images[1]))
	assert.True(t, sort.StringsAreSorted(assembler.images))

	// Zero falls back to the daily default
	assert.Equal(t, 3.0, assembler.secondsPerImage)
}

func TestRenderFinalCoversAllDays(t *testing.T) {
	svc, _, store, assembler, trip := newVlogFixture(t)

	base := "uploads/" + trip.ID.Hex() + "/"
	store.files[base+"day_1/20240101_080000_a.jpg"] = []byte("a")
	store.files[base+"day_2/20240102_080000_b.jpg"] = []byte("b")

	resp, err := svc.RenderFinal(context.Background(), trip.ID, trip.UserID, 0)

	require.NoError(t, err)
	assert.Equal(t, "/videos/"+trip.ID.Hex()+"/final_trip.mp4", resp.Video)
	assert.Len(t, assembler.images, 2)
	assert.Equal(t, 2.0, assembler.secondsPerImage)
}

func TestRenderDailyEncoderUnavailable(t *testing.T) {
	svc, _, store, assembler, trip := newVlogFixture(t)
	assembler.err = media.ErrEncoderUnavailable

	prefix := "uploads/" + trip.ID.Hex() + "/day_1/"
	store.files[prefix+"20240101_080000_a.jpg"] = []byte("a")

	_, err := svc.RenderDaily(context.Background(), trip.ID, trip.UserID, 1, 0)

	assert.True(t, utils.IsUnavailable(err))
}

func TestRenderDailyForeignTrip(t *testing.T) {
	svc, _, _, assembler, trip := newVlogFixture(t)

	_, err := svc.RenderDaily(context.Background(), trip.ID, primitive.NewObjectID(), 1, 0)

	assert.True(t, utils.IsNotFound(err))
	assert.Equal(t, 0, assembler.calls)
}

func TestServeVideoRejectsTraversal(t *testing.T) {
	svc, _, store, _, trip := newVlogFixture(t)
	store.files["videos/"+trip.ID.Hex()+"/day_1_recap.mp4"] = []byte("mp4")

	_, err := svc.ServeVideo(context.Background(), trip.ID.Hex(), "../secrets.txt")
	assert.True(t, utils.IsNotFound(err))

	_, err = svc.ServeVideo(context.Background(), "not-a-hex-id", "day_1_recap.mp4")
	assert.True(t, utils.IsNotFound(err))

	resp, err := svc.ServeVideo(context.Background(), trip.ID.Hex(), "day_1_recap.mp4")
	require.NoError(t, err)
	resp.Reader.Close()
}
