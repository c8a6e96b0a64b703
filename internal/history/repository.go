// Package history records every publish attempt in the local database.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/julienpequegnot/devpub/internal/database"
	"github.com/julienpequegnot/devpub/internal/devto"
)

const (
	StatusPublished = "published"
	StatusDrafted   = "drafted"
	StatusFailed    = "failed"
)

type Entry struct {
	ID           string
	Title        string
	Status       string
	ArticleID    int64
	URL          string
	ErrorKind    string
	ErrorCode    int
	ErrorMessage string
	Published    bool
	CreatedAt    time.Time
}

// FromResult converts a publish outcome for the article titled title into a
// history entry. Failed results carry no title of their own.
func FromResult(title string, res devto.Result, published bool) Entry {
	e := Entry{
		Title:     title,
		Status:    StatusPublished,
		ArticleID: res.ID,
		URL:       res.URL,
		Published: published,
	}
	if !published {
		e.Status = StatusDrafted
	}
	if res.Err != nil {
		e.Status = StatusFailed
		e.ErrorKind = string(res.Err.Kind)
		e.ErrorCode = res.Err.Code
		e.ErrorMessage = res.Err.Message
	}
	return e
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Record(e Entry) (*Entry, error) {
	e.ID = ksuid.New().String()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(
		`INSERT INTO publications (id, title, status, article_id, url, error_kind, error_code, error_message, published, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Status, nullInt(e.ArticleID), nullString(e.URL),
		nullString(e.ErrorKind), nullInt(int64(e.ErrorCode)), nullString(e.ErrorMessage),
		e.Published, e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert publication: %w", err)
	}
	return &e, nil
}

// List returns the most recent entries first.
func (r *Repository) List(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT id, title, status, article_id, url, error_kind, error_code, error_message, published, created_at
		FROM publications
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// FindPublished returns the latest live publication of title, or nil. Drafts
// and failed attempts are ignored.
func (r *Repository) FindPublished(title string) (*Entry, error) {
	row := r.db.QueryRow(`
		SELECT id, title, status, article_id, url, error_kind, error_code, error_message, published, created_at
		FROM publications
		WHERE title = ? AND status = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, title, StatusPublished)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var e Entry
	var articleID, errorCode sql.NullInt64
	var url, errorKind, errorMessage sql.NullString
	if err := s.Scan(&e.ID, &e.Title, &e.Status, &articleID, &url, &errorKind, &errorCode, &errorMessage, &e.Published, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.ArticleID = articleID.Int64
	e.URL = url.String
	e.ErrorKind = errorKind.String
	e.ErrorCode = int(errorCode.Int64)
	e.ErrorMessage = errorMessage.String
	return &e, nil
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
