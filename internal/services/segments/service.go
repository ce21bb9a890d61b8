package segments

import (
	"context"
	"fmt"
	"io"
	"math"
	"path"
	"path/filepath"
	"strings"

	"github.com/grafov/m3u8"
	"github.com/hashicorp/go-hclog"
	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/internal/playback"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	videos     VideoCatalog
	urlPrefix  string
	logger     hclog.Logger
}

// NewService creates a new segment catalog. urlPrefix is where the media
// handler serves segment files, e.g. /api/v1/media.
func NewService(repository Repository, videos VideoCatalog, urlPrefix string, logger hclog.Logger) Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ServiceImpl{
		repository: repository,
		videos:     videos,
		urlPrefix:  strings.TrimSuffix(urlPrefix, "/"),
		logger:     logger.Named("segments"),
	}
}

// ListByVideo returns the active segments of a video
func (s *ServiceImpl) ListByVideo(ctx context.Context, videoID string) ([]models.Segment, error) {
	if _, err := s.videos.LookupVideo(ctx, videoID); err != nil {
		return nil, err
	}
	return s.repository.GetSegmentsByVideoID(ctx, videoID)
}

// Add appends segments after the video's existing ones
func (s *ServiceImpl) Add(ctx context.Context, videoID string, inputs []Input) (*Result, error) {
	if len(inputs) == 0 {
		return nil, apperrors.MissingFieldError("segments")
	}
	if _, err := s.videos.LookupVideo(ctx, videoID); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetSegmentsByVideoID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	created := make([]models.Segment, 0, len(inputs))
	for i, in := range inputs {
		seg, err := buildSegment(videoID, len(existing)+i, in)
		if err != nil {
			return nil, err.WithDetail("segment", i)
		}
		created = append(created, seg)
	}

	if err := s.repository.CreateSegments(ctx, created); err != nil {
		return nil, err
	}
	return s.finish(ctx, videoID, append(existing, created...), created)
}

// ImportPlaylist replaces a video's segments with the entries of an HLS media
// playlist. Segment start times accumulate from the EXTINF durations.
func (s *ServiceImpl) ImportPlaylist(ctx context.Context, videoID string, r io.Reader) (*Result, error) {
	if _, err := s.videos.LookupVideo(ctx, videoID); err != nil {
		return nil, err
	}

	playlist, listType, err := m3u8.DecodeFrom(r, true)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "failed to parse playlist")
	}
	if listType != m3u8.MEDIA {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "expected a media playlist, got a master playlist")
	}
	mediaPlaylist, ok := playlist.(*m3u8.MediaPlaylist)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "unexpected playlist type")
	}

	var (
		imported []models.Segment
		start    float64
	)
	for i, entry := range mediaPlaylist.Segments {
		if entry == nil {
			break
		}
		seg, appErr := buildSegment(videoID, i, Input{
			Filename:  path.Base(entry.URI),
			StartTime: start,
			Duration:  entry.Duration,
		})
		if appErr != nil {
			return nil, appErr.WithDetail("segment", i)
		}
		imported = append(imported, seg)
		start = seg.EndTime
	}
	if len(imported) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "playlist contains no segments")
	}

	if err := s.repository.ReplaceSegments(ctx, videoID, imported); err != nil {
		return nil, err
	}
	s.logger.Info("imported playlist", "video", videoID, "segments", len(imported), "total", start)
	return s.finish(ctx, videoID, imported, imported)
}

func (s *ServiceImpl) finish(ctx context.Context, videoID string, all, created []models.Segment) (*Result, error) {
	gaps := playback.CheckContinuity(ToPlayback(all, s.SourceRef))
	for _, d := range gaps {
		s.logger.Warn("segment discontinuity", "video", videoID, "after", d.After, "before", d.Before, "gap", d.Gap)
	}
	if gaps == nil {
		gaps = []playback.Discontinuity{}
	}

	total := 0.0
	for _, seg := range all {
		total = math.Max(total, seg.EndTime)
	}
	if err := s.videos.SetTimeline(ctx, videoID, total); err != nil {
		return nil, err
	}

	return &Result{Segments: created, Discontinuities: gaps, TotalDuration: total}, nil
}

// Playlist renders the video's segments as an HLS VOD media playlist
func (s *ServiceImpl) Playlist(ctx context.Context, videoID string) (string, error) {
	segments, err := s.ListByVideo(ctx, videoID)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return "", apperrors.New(apperrors.ErrCodeNoSegment, "video has no segments").WithDetail("video_id", videoID)
	}

	pl, err := m3u8.NewMediaPlaylist(0, uint(len(segments)))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create playlist")
	}
	pl.MediaType = m3u8.VOD

	for i, seg := range segments {
		if err := pl.Append(s.SourceRef(seg), seg.Duration, ""); err != nil {
			return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to append segment")
		}
		// every segment file restarts its timestamps
		if i > 0 {
			if err := pl.SetDiscontinuity(); err != nil {
				return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to mark discontinuity")
			}
		}
	}
	pl.Close()

	return pl.String(), nil
}

// SourceRef is the URL the media handler serves the segment file under
func (s *ServiceImpl) SourceRef(segment models.Segment) string {
	return fmt.Sprintf("%s/segments/%s", s.urlPrefix, segment.Filename)
}

// ToPlayback converts stored segments into resolver segments
func ToPlayback(segments []models.Segment, sourceRef func(models.Segment) string) []playback.Segment {
	out := make([]playback.Segment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, playback.Segment{
			ID:        seg.ID,
			Index:     seg.Index,
			StartTime: seg.StartTime,
			EndTime:   seg.EndTime,
			Duration:  seg.Duration,
			SourceRef: sourceRef(seg),
		})
	}
	return out
}

func buildSegment(videoID string, index int, in Input) (models.Segment, *apperrors.AppError) {
	filename := strings.TrimSpace(in.Filename)
	if filename == "" || filename == "." || filename == "/" {
		return models.Segment{}, apperrors.MissingFieldError("filename")
	}
	if filepath.Base(filename) != filename {
		return models.Segment{}, apperrors.ValidationError("filename", "must not contain a path")
	}
	if math.IsNaN(in.StartTime) || in.StartTime < 0 {
		return models.Segment{}, apperrors.ValidationError("start_time", "must be a non-negative number")
	}

	end := in.EndTime
	if end <= 0 && in.Duration > 0 {
		end = in.StartTime + in.Duration
	}
	if math.IsNaN(end) || end <= in.StartTime {
		return models.Segment{}, apperrors.ValidationError("end_time", "must be after start_time")
	}

	duration := in.Duration
	if duration <= 0 {
		duration = end - in.StartTime
	}

	return models.Segment{
		VideoID:   videoID,
		Index:     index,
		Filename:  filename,
		StartTime: in.StartTime,
		EndTime:   end,
		Duration:  duration,
		Size:      in.Size,
		FPS:       in.FPS,
		Width:     in.Width,
		Height:    in.Height,
		IsActive:  true,
	}, nil
}
