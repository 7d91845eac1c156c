// package shared defines shared helpers
package shared

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// playlistIDPattern matches the playlist token in a YouTube URL query string.
var playlistIDPattern = regexp.MustCompile(`list=([a-zA-Z0-9_-]+)`)

// bareIDPattern matches input that is already an identifier on its own.
var bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,64}$`)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}

// ExtractPlaylistID pulls a playlist identifier out of user-supplied text.
//
// Accepts a full YouTube URL containing a `list=` query parameter, or a bare
// identifier-shaped token which is returned verbatim. Returns "" when neither
// form matches, so callers can distinguish malformed input from an upstream
// fetch failure before any network call is made.
func ExtractPlaylistID(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := playlistIDPattern.FindStringSubmatch(raw); len(m) == 2 {
		return m[1]
	}
	if bareIDPattern.MatchString(raw) {
		return raw
	}
	return ""
}

// NormalizeSubjectName case-folds and trims a subject name.
//
// Subject names are unique per user under this normalization.
func NormalizeSubjectName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
