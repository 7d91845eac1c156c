package shared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	t.Run("with custom writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf)

		logger.Info("test message")
		if !strings.Contains(buf.String(), "test message") {
			t.Errorf("expected log output to contain message, got %s", buf.String())
		}
	})

	t.Run("with nil writer defaults to stderr", func(t *testing.T) {
		logger := NewLogger(nil)
		if logger == nil {
			t.Fatal("expected a logger")
		}
	})

	t.Run("child logger carries fields", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := WithLogger(NewLogger(buf), "subject", "algorithms")

		logger.Info("run started")
		if !strings.Contains(buf.String(), "algorithms") {
			t.Errorf("expected log output to contain field value, got %s", buf.String())
		}
	})

	t.Run("level filtering", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf)
		SetLogLevel(logger, log.ErrorLevel)

		logger.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("expected info log to be filtered, got %s", buf.String())
		}
	})
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected distinct IDs")
	}
}

func TestExtractPlaylistID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"full playlist URL", "https://www.youtube.com/playlist?list=PLabc123_XY-z", "PLabc123_XY-z"},
		{"watch URL with list param", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLabc123_XY-z", "PLabc123_XY-z"},
		{"list param mid-query", "https://youtube.com/watch?list=PLabc123_XY-z&v=dQw4w9WgXcQ", "PLabc123_XY-z"},
		{"bare playlist ID", "PLhQjrBD2T382dYs1fXk1threRG2NTOxm_", "PLhQjrBD2T382dYs1fXk1threRG2NTOxm_"},
		{"surrounding whitespace", "  PLhQjrBD2T382dYs1fXk1th  ", "PLhQjrBD2T382dYs1fXk1th"},
		{"too short for bare ID", "abc", ""},
		{"URL without list param", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", ""},
		{"empty string", "", ""},
		{"garbage with spaces", "not a playlist at all", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractPlaylistID(tc.input); got != tc.want {
				t.Errorf("ExtractPlaylistID(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeSubjectName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Math", "math"},
		{"  Operating Systems  ", "operating systems"},
		{"ALGO", "algo"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeSubjectName(tc.input); got != tc.want {
			t.Errorf("NormalizeSubjectName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestWatchURL(t *testing.T) {
	got := WatchURL("dQw4w9WgXcQ")
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if got != want {
		t.Errorf("WatchURL = %q, want %q", got, want)
	}
}
