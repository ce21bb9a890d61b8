package playback

import "errors"

var (
	// ErrNoSegmentFound means no segment covers the requested time
	ErrNoSegmentFound = errors.New("no segment found for time")

	ErrNotLoaded         = errors.New("player has no timeline loaded")
	ErrUnknownAnnotation = errors.New("annotation not in timeline")
	ErrInvalidRate       = errors.New("playback rate must be a positive number")
	ErrNoPendingSeek     = errors.New("no pending seek to retry")
	ErrRetryLimit        = errors.New("segment load retry limit reached")
)
