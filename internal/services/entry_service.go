package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lmoralesc/code-journal-be/internal/models"
)

// EntryInput carries the client-editable fields of an entry.
type EntryInput struct {
	Title    string
	Notes    string
	PhotoURL string
}

// EntryServiceProvider defines the interface for entry services. Every method
// takes the authenticated user's ID and scopes all queries to it; an entry
// owned by someone else behaves exactly like a missing one.
type EntryServiceProvider interface {
	List(ctx context.Context, userID int64) ([]models.Entry, error)
	Get(ctx context.Context, userID, entryID int64) (models.Entry, error)
	Create(ctx context.Context, userID int64, in EntryInput) (models.Entry, error)
	Update(ctx context.Context, userID, entryID int64, in EntryInput) (models.Entry, error)
	Delete(ctx context.Context, userID, entryID int64) error
}

// EntryService provides CRUD over the entries table.
type EntryService struct {
	db *sql.DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *sql.DB) *EntryService {
	return &EntryService{db: db}
}

// List returns all entries owned by userID, newest first.
func (s *EntryService) List(ctx context.Context, userID int64) ([]models.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, user_id, title, notes, photo_url, created_at
		 FROM entries
		 WHERE user_id = ?
		 ORDER BY entry_id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.EntryID, &e.UserID, &e.Title, &e.Notes, &e.PhotoURL, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns a single entry owned by userID.
func (s *EntryService) Get(ctx context.Context, userID, entryID int64) (models.Entry, error) {
	var e models.Entry
	row := s.db.QueryRowContext(ctx,
		`SELECT entry_id, user_id, title, notes, photo_url, created_at
		 FROM entries
		 WHERE entry_id = ? AND user_id = ?`,
		entryID, userID)
	err := row.Scan(&e.EntryID, &e.UserID, &e.Title, &e.Notes, &e.PhotoURL, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrNotFound
		}
		return models.Entry{}, fmt.Errorf("failed to query entry: %w", err)
	}
	return e, nil
}

// Create inserts a new entry stamped with userID.
func (s *EntryService) Create(ctx context.Context, userID int64, in EntryInput) (models.Entry, error) {
	var e models.Entry
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO entries (user_id, title, notes, photo_url)
		 VALUES (?, ?, ?, ?)
		 RETURNING entry_id, user_id, title, notes, photo_url, created_at`,
		userID, in.Title, in.Notes, in.PhotoURL)
	if err := row.Scan(&e.EntryID, &e.UserID, &e.Title, &e.Notes, &e.PhotoURL, &e.CreatedAt); err != nil {
		return models.Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}
	return e, nil
}

// Update rewrites the editable fields of an entry owned by userID.
func (s *EntryService) Update(ctx context.Context, userID, entryID int64, in EntryInput) (models.Entry, error) {
	var e models.Entry
	row := s.db.QueryRowContext(ctx,
		`UPDATE entries
		 SET title = ?, notes = ?, photo_url = ?
		 WHERE entry_id = ? AND user_id = ?
		 RETURNING entry_id, user_id, title, notes, photo_url, created_at`,
		in.Title, in.Notes, in.PhotoURL, entryID, userID)
	err := row.Scan(&e.EntryID, &e.UserID, &e.Title, &e.Notes, &e.PhotoURL, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrNotFound
		}
		return models.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	return e, nil
}

// Delete removes an entry owned by userID.
func (s *EntryService) Delete(ctx context.Context, userID, entryID int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM entries WHERE entry_id = ? AND user_id = ?`,
		entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
