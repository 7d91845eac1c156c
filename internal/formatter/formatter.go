// package formatter renders pipeline outcomes for the terminal and exports cached lectures to Markdown
package formatter

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/lecx/internal/models"
	"github.com/desertthunder/lecx/internal/pipeline"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// RenderOutcome renders a pipeline outcome as a styled terminal card.
//
// Success shows the summary with a watch link; each failure status renders
// its stage-specific diagnostic. A transcript failure still includes the
// resolved video link.
func RenderOutcome(o *pipeline.Outcome) string {
	var sb strings.Builder

	switch o.Status {
	case pipeline.StatusSummarized:
		sb.WriteString(styles.title.Render(fmt.Sprintf("TL;DW: %s", o.VideoTitle)))
		sb.WriteString("\n")
		sb.WriteString(o.Summary)
		sb.WriteString("\n")
		if o.VideoURL != "" {
			sb.WriteString("\n" + styles.ok.Render("Watch the full lecture: ") + o.VideoURL + "\n")
		}
		sb.WriteString(styles.help.Render(fmt.Sprintf("Run `lecx lecture cached %s` to see this again.", o.Subject)))
	case pipeline.StatusNotConfigured:
		sb.WriteString(styles.err.Render(fmt.Sprintf("'%s' isn't fully set up.", o.Subject)))
		sb.WriteString("\n")
		sb.WriteString(styles.help.Render(fmt.Sprintf("Add it with `lecx subject add %s` and link a playlist with `lecx subject link %s <url>`.", o.Subject, o.Subject)))
	case pipeline.StatusPlaylistEmpty:
		sb.WriteString(styles.warn.Render("That playlist seems to be empty."))
	case pipeline.StatusLookupFailed:
		sb.WriteString(styles.err.Render("Couldn't look up the latest lecture."))
		sb.WriteString("\n")
		sb.WriteString(styles.help.Render(o.Detail))
	case pipeline.StatusTranscriptFailed:
		sb.WriteString(styles.err.Render(fmt.Sprintf("Couldn't get a transcript for: %s", o.VideoTitle)))
		sb.WriteString("\n")
		sb.WriteString(styles.help.Render(o.Detail))
		sb.WriteString("\n")
		sb.WriteString(styles.ok.Render("Here's the link anyway: ") + o.VideoURL)
	case pipeline.StatusSummarizeFailed:
		sb.WriteString(styles.err.Render("Summarization failed."))
		sb.WriteString("\n")
		sb.WriteString(styles.help.Render(o.Detail))
	case pipeline.StatusCacheFailed:
		sb.WriteString(styles.err.Render("Summary produced but could not be cached."))
		sb.WriteString("\n")
		sb.WriteString(styles.help.Render(o.Detail))
	}

	sb.WriteString("\n")
	return sb.String()
}

// RenderOutcomeText renders an outcome without styling, for --plain output
// and piping.
func RenderOutcomeText(o *pipeline.Outcome) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("status: %s\n", o.Status))
	if o.VideoTitle != "" {
		sb.WriteString(fmt.Sprintf("title: %s\n", o.VideoTitle))
	}
	if o.VideoURL != "" {
		sb.WriteString(fmt.Sprintf("url: %s\n", o.VideoURL))
	}
	if o.Detail != "" {
		sb.WriteString(fmt.Sprintf("detail: %s\n", o.Detail))
	}
	if o.Summary != "" {
		sb.WriteString("\n" + o.Summary + "\n")
	}

	return sb.String()
}

// RenderSubjects renders a user's subject list as plain lines.
func RenderSubjects(subjects []*models.Subject) string {
	if len(subjects) == 0 {
		return styles.help.Render("No subjects yet. Add one with `lecx subject add <name>`.") + "\n"
	}

	var sb strings.Builder
	for _, subject := range subjects {
		line := subject.Name
		if subject.Linked() {
			line += fmt.Sprintf("  (playlist: %s)", subject.PlaylistID)
		} else {
			line += "  (no playlist linked)"
		}
		if subject.CachedLecture != nil {
			line += fmt.Sprintf("  [cached: %s]", subject.CachedLecture.VideoTitle)
		}
		sb.WriteString(line + "\n")
	}

	return sb.String()
}

// ExportToMarkdown converts a cached lecture to Markdown.
func ExportToMarkdown(subjectName string, cache *models.LectureCache) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", cache.VideoTitle))
	buf.WriteString(fmt.Sprintf("**Subject**: %s\n\n", subjectName))
	buf.WriteString("## Summary\n\n")
	buf.WriteString(cache.Summary)
	buf.WriteString("\n\n## Transcript\n\n")
	buf.WriteString(cache.Transcript)
	buf.WriteString("\n")

	return buf.Bytes()
}

// WriteMarkdownExport exports a cached lecture to a Markdown file.
//
// Defaults to {subject}_lecture.md as the filename.
func WriteMarkdownExport(subjectName string, cache *models.LectureCache, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_lecture.md", subjectName)
	}

	if err := os.WriteFile(filepath, ExportToMarkdown(subjectName, cache), 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}
