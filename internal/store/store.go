package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/desertthunder/lecx/internal/models"
	"github.com/desertthunder/lecx/internal/shared"
)

// SubjectStore defines the registry operations shared by all backing stores.
type SubjectStore interface {
	// Register creates an empty subject for the user if none exists under
	// the normalized name. Idempotent: returns created=false without
	// mutation when the subject is already present.
	Register(userID, name string) (created bool, err error)

	// LinkPlaylist overwrites the subject's playlist binding. Fails with
	// shared.ErrSubjectNotFound if the subject was never registered; never
	// creates a subject as a side effect.
	LinkPlaylist(userID, name, playlistID string) error

	// GetSubject returns the subject or shared.ErrSubjectNotFound. A
	// registered-but-unlinked subject is returned with an empty PlaylistID,
	// distinct from absence.
	GetSubject(userID, name string) (*models.Subject, error)

	// WriteCache overwrites the subject's cached lecture. Fails with
	// shared.ErrSubjectNotFound if the subject vanished between the
	// pipeline's read and this write.
	WriteCache(userID, name string, cache models.LectureCache) error

	// ListSubjects returns the user's subjects sorted by name. An unknown
	// user yields an empty slice, not an error.
	ListSubjects(userID string) ([]*models.Subject, error)
}

// MemoryStore is the default process-wide registry.
//
// Profiles are created lazily on first registration and the whole registry
// is lost on process restart. Reads and writes from concurrent pipeline runs
// are guarded by a single RWMutex; runs for the same (user, subject) pair
// are serialized one level up, in the pipeline.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]map[string]*models.Subject
}

// NewMemoryStore creates an empty in-memory registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]map[string]*models.Subject)}
}

// Register creates an empty subject if absent.
func (m *MemoryStore) Register(userID, name string) (bool, error) {
	name = shared.NormalizeSubjectName(name)
	if name == "" {
		return false, fmt.Errorf("%w: subject name", shared.ErrMissingArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.profiles[userID]
	if !ok {
		profile = make(map[string]*models.Subject)
		m.profiles[userID] = profile
	}

	if _, exists := profile[name]; exists {
		return false, nil
	}

	profile[name] = &models.Subject{Name: name}
	return true, nil
}

// LinkPlaylist overwrites the playlist binding unconditionally.
func (m *MemoryStore) LinkPlaylist(userID, name, playlistID string) error {
	name = shared.NormalizeSubjectName(name)

	m.mu.Lock()
	defer m.mu.Unlock()

	subject, ok := m.profiles[userID][name]
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrSubjectNotFound, name)
	}

	subject.PlaylistID = playlistID
	return nil
}

// GetSubject returns a copy of the subject so callers cannot mutate registry
// state outside the store's interface.
func (m *MemoryStore) GetSubject(userID, name string) (*models.Subject, error) {
	name = shared.NormalizeSubjectName(name)

	m.mu.RLock()
	defer m.mu.RUnlock()

	subject, ok := m.profiles[userID][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrSubjectNotFound, name)
	}

	return copySubject(subject), nil
}

// WriteCache overwrites the cached lecture.
func (m *MemoryStore) WriteCache(userID, name string, cache models.LectureCache) error {
	name = shared.NormalizeSubjectName(name)

	m.mu.Lock()
	defer m.mu.Unlock()

	subject, ok := m.profiles[userID][name]
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrSubjectNotFound, name)
	}

	subject.CachedLecture = &cache
	return nil
}

// ListSubjects returns the user's subjects sorted by name.
func (m *MemoryStore) ListSubjects(userID string) ([]*models.Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subjects := make([]*models.Subject, 0, len(m.profiles[userID]))
	for _, subject := range m.profiles[userID] {
		subjects = append(subjects, copySubject(subject))
	}

	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].Name < subjects[j].Name
	})

	return subjects, nil
}

func copySubject(subject *models.Subject) *models.Subject {
	copied := &models.Subject{
		Name:       subject.Name,
		PlaylistID: subject.PlaylistID,
	}
	if subject.CachedLecture != nil {
		cache := *subject.CachedLecture
		copied.CachedLecture = &cache
	}
	return copied
}
