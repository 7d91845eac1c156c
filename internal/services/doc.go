// Package services defines the upstream client interfaces for the lecture
// pipeline and implements them over HTTP.
//
// # Interfaces
//
// Each pipeline stage depends on one narrow interface so stages can be
// exercised independently with test doubles:
//   - [VideoService] : resolves a playlist to its most recently added video
//   - [TranscriptService] : resolves a video to normalized transcript text
//   - [Summarizer] : condenses a titled transcript into bullet points
//
// # Implementations
//
// [YouTubeService] calls the YouTube Data API v3 playlistItems endpoint with
// an API key, requesting a single item in the playlist's native insertion
// order (newest first).
//
// [TranscriptClient] calls a transcript service that carries no guaranteed
// schema version. The client tolerates three response shapes, probed in a
// fixed order with the first acceptance winning; see transcript.go.
//
// [SummaryClient] submits a single chat-completion request to an
// OpenAI-compatible endpoint and returns the model's text verbatim.
//
// # Error Handling
//
// Clients classify their own failures with sentinel errors from the shared
// package ([shared.ErrPlaylistNotFound], [shared.ErrPlaylistEmpty],
// [shared.ErrTranscriptUnavailable], [shared.ErrSummarizationFailed]) and
// always wrap the upstream detail so callers can render an actionable
// diagnostic. None of the clients retry: a failed call is reported upward
// and the user re-triggers manually.
package services
