package models

// Subject identifies one tracked course or topic for one user.
//
// Created empty on first registration. PlaylistID stays empty until a link
// operation and is overwritable by re-linking. CachedLecture is overwritten
// on every successful pipeline run and is never deleted independently.
type Subject struct {
	Name          string        `json:"name"`
	PlaylistID    string        `json:"playlist_id,omitempty"`
	CachedLecture *LectureCache `json:"cached_lecture,omitempty"`
}

// Linked reports whether a playlist has been bound to this subject.
func (s *Subject) Linked() bool {
	return s.PlaylistID != ""
}

// LectureCache holds the last successfully summarized lecture for a subject.
//
// When present, all three fields are non-empty and mutually consistent: the
// summary was produced from exactly this transcript and title.
type LectureCache struct {
	VideoTitle string `json:"video_title"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}

// VideoRef is a single resolved playlist item from the video hosting service.
type VideoRef struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}
