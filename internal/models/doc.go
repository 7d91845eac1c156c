// Package models defines domain entities for the lecture summarization service.
//
// The package contains lightweight structs shared across the store, services,
// and pipeline layers:
//   - [Subject] : A tracked course/topic bound to one playlist for one user
//   - [LectureCache] : The last successfully summarized lecture for a subject
//   - [VideoRef] : A resolved playlist item from the video hosting service
//
// The subject registry (internal/store) exclusively owns Subject and
// LectureCache data; services and the pipeline only read PlaylistID and
// write CachedLecture through the store's interface.
package models
