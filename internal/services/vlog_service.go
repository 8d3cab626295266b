package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"roadtrip/internal/models"
	"roadtrip/internal/repositories/interfaces"
	"roadtrip/internal/utils"
	"roadtrip/pkg/logger"
	"roadtrip/pkg/media"
	"roadtrip/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vlog template names that override one prompt each.
const (
	TemplateFoodieTrail    = "Foodie Trail"
	TemplateFamilyMemories = "Family Memories"
	TemplateEVRoadTrip     = "EV Road Trip"
)

// VlogService manages per-day image uploads and recap video rendering.
// Rendering is blocking and CPU-bound; it stages images through the storage
// provider into a temp workdir, assembles, then uploads the result.
type VlogService struct {
	trips     interfaces.TripRepository
	store     storage.StorageProvider
	assembler media.Assembler
	log       *logger.Logger
}

func NewVlogService(trips interfaces.TripRepository, store storage.StorageProvider, assembler media.Assembler, log *logger.Logger) *VlogService {
	return &VlogService{
		trips:     trips,
		store:     store,
		assembler: assembler,
		log:       log,
	}
}

// Prompts returns the seven-phase filming prompt list. Known templates
// override exactly one phase; anything else gets the base list unchanged.
func (s *VlogService) Prompts(template string) []models.VlogPrompt {
	prompts := []models.VlogPrompt{
		{Phase: "Start of day", Prompt: "Quick selfie before hitting the road"},
		{Phase: "On the road", Prompt: "Wide road shot / dashboard view (3s clip)"},
		{Phase: "Scenic stop", Prompt: "Landscape photo or slow pan video"},
		{Phase: "Food stop", Prompt: "Plate shot + ambience (3s)"},
		{Phase: "Fuel/EV", Prompt: "Quick fuel/charging moment"},
		{Phase: "Arrival", Prompt: "Arrival clip / smile shot"},
		{Phase: "Night", Prompt: "Sunset / hotel view"},
	}

	switch template {
	case TemplateFoodieTrail:
		prompts[3].Prompt = "Plate shot + menu board + ambience (3s)"
	case TemplateFamilyMemories:
		prompts[0].Prompt = "Family selfie + a fun moment (3s)"
	case TemplateEVRoadTrip:
		prompts[4].Prompt = "Charging shot + connector close-up (3s)"
	}

	return prompts
}

// UploadImage stores an uploaded image under the trip/day prefix with a
// collision-resistant filename and writes a best-effort thumbnail.
func (s *VlogService) UploadImage(ctx context.Context, tripID, userID primitive.ObjectID, day int, header *multipart.FileHeader) (*storage.UploadResponse, error) {
	if _, err := s.trips.GetByOwner(ctx, tripID, userID); err != nil {
		return nil, err
	}

	if header == nil {
		return nil, utils.NewValidationError("file required")
	}
	if header.Size > utils.MaxImageSize {
		return nil, utils.NewValidationError("file too large")
	}
	if day < 1 {
		day = 1
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	filename := utils.GenerateUploadFilename(header.Filename)
	key := fmt.Sprintf("uploads/%s/day_%d/%s", tripID.Hex(), day, filename)

	resp, err := s.store.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(data),
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, err
	}

	s.writeThumbnail(ctx, tripID, day, filename, data)

	return resp, nil
}

func (s *VlogService) writeThumbnail(ctx context.Context, tripID primitive.ObjectID, day int, filename string, data []byte) {
	thumb, err := utils.MakeThumbnail(bytes.NewReader(data), filename, utils.ThumbnailWidth)
	if err != nil {
		s.log.WithError(err).Debug("skipping thumbnail")
		return
	}

	key := fmt.Sprintf("uploads/%s/day_%d/thumbs/%s.jpg",
		tripID.Hex(), day, strings.TrimSuffix(filename, filepath.Ext(filename)))
	if _, err := s.store.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(thumb),
		ContentType: "image/jpeg",
		Size:        int64(len(thumb)),
	}); err != nil {
		s.log.WithError(err).Warn("failed to store thumbnail")
	}
}

// RenderDaily assembles one day's images into day_{n}_recap.mp4.
func (s *VlogService) RenderDaily(ctx context.Context, tripID, userID primitive.ObjectID, day int, secondsPerImage float64) (*models.RenderResponse, error) {
	if _, err := s.trips.GetByOwner(ctx, tripID, userID); err != nil {
		return nil, err
	}

	if day < 1 {
		day = 1
	}
	if secondsPerImage <= 0 {
		secondsPerImage = utils.DefaultDailySecondsPerImage
	}

	prefix := fmt.Sprintf("uploads/%s/day_%d/", tripID.Hex(), day)
	keys, err := s.listImageKeys(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, utils.NewValidationError("no images for this day")
	}

	outName := fmt.Sprintf("day_%d_recap.mp4", day)
	return s.render(ctx, tripID, keys, outName, secondsPerImage)
}

// RenderFinal assembles every day's images, in day order, into final_trip.mp4.
func (s *VlogService) RenderFinal(ctx context.Context, tripID, userID primitive.ObjectID, secondsPerImage float64) (*models.RenderResponse, error) {
	if _, err := s.trips.GetByOwner(ctx, tripID, userID); err != nil {
		return nil, err
	}

	if secondsPerImage <= 0 {
		secondsPerImage = utils.DefaultFinalSecondsPerImage
	}

	prefix := fmt.Sprintf("uploads/%s/", tripID.Hex())
	keys, err := s.listImageKeys(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, utils.NewValidationError("no images")
	}

	return s.render(ctx, tripID, keys, "final_trip.mp4", secondsPerImage)
}

// listImageKeys returns image keys under a prefix in name order, skipping
// thumbnails. Name order is upload order because filenames are
// timestamp-prefixed.
func (s *VlogService) listImageKeys(ctx context.Context, prefix string) ([]string, error) {
	files, err := s.store.ListFiles(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, f := range files {
		if strings.Contains(f.Key, "/thumbs/") {
			continue
		}
		if !utils.IsImageFile(f.Key) {
			continue
		}
		keys = append(keys, f.Key)
	}

	sort.Strings(keys)
	return keys, nil
}

func (s *VlogService) render(ctx context.Context, tripID primitive.ObjectID, keys []string, outName string, secondsPerImage float64) (*models.RenderResponse, error) {
	workdir, err := os.MkdirTemp("", "recap_")
	if err != nil {
		return nil, fmt.Errorf("failed to create workdir: %w", err)
	}
	defer os.RemoveAll(workdir)

	staged, err := s.stage(ctx, workdir, keys)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(workdir, outName)
	if err := s.assembler.Assemble(ctx, staged, outPath, secondsPerImage); err != nil {
		switch {
		case errors.Is(err, media.ErrEncoderUnavailable):
			return nil, &utils.UnavailableError{Capability: "video assembly", Reason: "ffmpeg not installed"}
		case errors.Is(err, media.ErrNoImages):
			return nil, utils.NewValidationError("no images")
		default:
			return nil, fmt.Errorf("video assembly failed: %w", err)
		}
	}

	out, err := os.Open(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open rendered video: %w", err)
	}
	defer out.Close()

	stat, err := out.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat rendered video: %w", err)
	}

	videoKey := fmt.Sprintf("videos/%s/%s", tripID.Hex(), outName)
	if _, err := s.store.Upload(ctx, &storage.UploadRequest{
		Key:         videoKey,
		Reader:      out,
		ContentType: "video/mp4",
		Size:        stat.Size(),
	}); err != nil {
		return nil, err
	}

	s.log.WithField("trip_id", tripID.Hex()).
		WithField("images", len(keys)).
		WithField("video", videoKey).
		Info("recap video rendered")

	return &models.RenderResponse{Video: "/" + videoKey}, nil
}

// stage downloads each image into the workdir with an index-prefixed name so
// the assembler sees them in key order.
func (s *VlogService) stage(ctx context.Context, workdir string, keys []string) ([]string, error) {
	staged := make([]string, 0, len(keys))
	for i, key := range keys {
		resp, err := s.store.Download(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
		}

		dst := filepath.Join(workdir, fmt.Sprintf("%04d%s", i, filepath.Ext(key)))
		if err := writeFile(dst, resp.Reader); err != nil {
			resp.Reader.Close()
			return nil, err
		}
		resp.Reader.Close()
		staged = append(staged, dst)
	}
	return staged, nil
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to stage image: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to stage image: %w", err)
	}
	return nil
}

// ServeVideo streams a previously rendered video. Filenames are restricted to
// a single path element.
func (s *VlogService) ServeVideo(ctx context.Context, tripIDHex, filename string) (*storage.DownloadResponse, error) {
	if strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") || filename == "" {
		return nil, &utils.NotFoundError{Resource: "video"}
	}
	if _, err := primitive.ObjectIDFromHex(tripIDHex); err != nil {
		return nil, &utils.NotFoundError{Resource: "video"}
	}

	resp, err := s.store.Download(ctx, fmt.Sprintf("videos/%s/%s", tripIDHex, filename))
	if err != nil {
		return nil, &utils.NotFoundError{Resource: "video"}
	}

	return resp, nil
}
