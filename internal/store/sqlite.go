package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/lecx/internal/models"
	"github.com/desertthunder/lecx/internal/shared"
)

// SQLiteStore implements [SubjectStore] over the subjects table.
//
// This is the durable extension point: the pipeline and command layers take
// a SubjectStore handle and never distinguish this from the memory registry.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new [SQLiteStore] with the given database connection.
//
// The connection is expected to have been migrated via [shared.RunMigrations].
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Register inserts an empty subject row if absent.
func (s *SQLiteStore) Register(userID, name string) (bool, error) {
	name = shared.NormalizeSubjectName(name)
	if name == "" {
		return false, fmt.Errorf("%w: subject name", shared.ErrMissingArgument)
	}

	query := `
		INSERT INTO subjects (user_id, name) VALUES (?, ?)
		ON CONFLICT (user_id, name) DO NOTHING
	`

	result, err := s.db.Exec(query, userID, name)
	if err != nil {
		return false, fmt.Errorf("failed to insert subject: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

// LinkPlaylist overwrites the playlist binding for a registered subject.
func (s *SQLiteStore) LinkPlaylist(userID, name, playlistID string) error {
	name = shared.NormalizeSubjectName(name)

	query := `
		UPDATE subjects
		SET playlist_id = ?, updated_at = ?
		WHERE user_id = ? AND name = ?
	`

	result, err := s.db.Exec(query, playlistID, time.Now(), userID, name)
	if err != nil {
		return fmt.Errorf("failed to update subject: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSubjectNotFound, name)
	}

	return nil
}

// GetSubject retrieves a subject by normalized name.
func (s *SQLiteStore) GetSubject(userID, name string) (*models.Subject, error) {
	name = shared.NormalizeSubjectName(name)

	query := `
		SELECT name, playlist_id, video_title, transcript, summary
		FROM subjects
		WHERE user_id = ? AND name = ?
	`

	subject, err := scanSubject(s.db.QueryRow(query, userID, name))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrSubjectNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query subject: %w", err)
	}

	return subject, nil
}

// WriteCache overwrites the cached lecture columns.
func (s *SQLiteStore) WriteCache(userID, name string, cache models.LectureCache) error {
	name = shared.NormalizeSubjectName(name)

	query := `
		UPDATE subjects
		SET video_title = ?, transcript = ?, summary = ?, updated_at = ?
		WHERE user_id = ? AND name = ?
	`

	result, err := s.db.Exec(query, cache.VideoTitle, cache.Transcript, cache.Summary, time.Now(), userID, name)
	if err != nil {
		return fmt.Errorf("failed to update cache: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSubjectNotFound, name)
	}

	return nil
}

// ListSubjects returns the user's subjects sorted by name.
func (s *SQLiteStore) ListSubjects(userID string) ([]*models.Subject, error) {
	query := `
		SELECT name, playlist_id, video_title, transcript, summary
		FROM subjects
		WHERE user_id = ?
		ORDER BY name ASC
	`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return subjects, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanSubject.
type scanner interface {
	Scan(dest ...any) error
}

func scanSubject(row scanner) (*models.Subject, error) {
	var (
		name       string
		playlistID sql.NullString
		videoTitle sql.NullString
		transcript sql.NullString
		summary    sql.NullString
	)

	if err := row.Scan(&name, &playlistID, &videoTitle, &transcript, &summary); err != nil {
		return nil, err
	}

	subject := &models.Subject{Name: name, PlaylistID: playlistID.String}
	if videoTitle.Valid && transcript.Valid && summary.Valid {
		subject.CachedLecture = &models.LectureCache{
			VideoTitle: videoTitle.String,
			Transcript: transcript.String,
			Summary:    summary.String,
		}
	}

	return subject, nil
}
