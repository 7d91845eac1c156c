package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Subject registry errors
	ErrSubjectNotFound   = fmt.Errorf("subject not found")
	ErrPlaylistNotLinked = fmt.Errorf("no playlist linked to subject")
	ErrNoCachedLecture   = fmt.Errorf("no cached lecture for subject")

	// Input validation errors
	ErrInvalidPlaylistURL = fmt.Errorf("invalid playlist URL or ID")
	ErrMissingArgument    = fmt.Errorf("missing required argument")

	// Upstream service errors
	ErrPlaylistNotFound      = fmt.Errorf("playlist not found")
	ErrPlaylistEmpty         = fmt.Errorf("playlist has no videos")
	ErrLookupFailed          = fmt.Errorf("video lookup failed")
	ErrTranscriptUnavailable = fmt.Errorf("transcript unavailable")
	ErrSummarizationFailed   = fmt.Errorf("summarization failed")
	ErrServiceUnavailable    = fmt.Errorf("service unavailable")
)
