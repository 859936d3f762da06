// Package notes provides a PostgreSQL-backed repository for note persistence,
// substring search, and the folder-detach bulk update.
package notes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// PostgresRepository implements note storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const noteColumns = `id, user_id, title, content, folder_id, tags, created_at, updated_at`

// Create inserts a new note. ID and timestamps are expected to be populated
// by the caller; tags are stored as a JSONB array to keep ordering.
func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		INSERT INTO notes (id, user_id, title, content, folder_id, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	tags, err := marshalTags(note.Tags)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx, query,
		note.ID, note.UserID, note.Title, note.Content, note.FolderID, tags,
		note.CreatedAt, note.UpdatedAt); err != nil {
		return nil, dbx.WrapError(err)
	}

	return note, nil
}

// GetByID loads a note by ID regardless of owner; the ownership check happens
// in the service layer. Returns common.ErrorNotFound if absent.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`

	note, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.WrapError(err)
	}
	return note, nil
}

// SelectByUser returns all notes owned by userID, most recently updated first.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `
		SELECT ` + noteColumns + ` FROM notes
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	return r.selectNotes(ctx, query, userID)
}

// Update persists title, content, folder reference, tags and updated_at.
// user_id and created_at are never written after creation.
func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET title = $2, content = $3, folder_id = $4, tags = $5, updated_at = $6
		WHERE id = $1
	`

	tags, err := marshalTags(note.Tags)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query,
		note.ID, note.Title, note.Content, note.FolderID, tags, note.UpdatedAt); err != nil {
		return dbx.WrapError(err)
	}
	return nil
}

// Delete removes a note by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM notes
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return dbx.WrapError(err)
	}
	return nil
}

// Search returns the caller's notes whose title or content contains query as
// a case-insensitive substring, most recently updated first. The query text
// is escaped so ILIKE metacharacters in user input are matched literally.
func (r *PostgresRepository) Search(ctx context.Context, userID string, query string) ([]*models.Note, error) {
	pattern := "%" + EscapeLikePattern(query) + "%"

	stmt := `
		SELECT ` + noteColumns + ` FROM notes
		WHERE user_id = $1 AND (title ILIKE $2 ESCAPE '\' OR content ILIKE $2 ESCAPE '\')
		ORDER BY updated_at DESC
	`
	return r.selectNotes(ctx, stmt, userID, pattern)
}

// DetachFolder clears folder_id on every note referencing folderID,
// regardless of owner, and returns the number of notes updated. Runs inside
// the folder-deletion transaction.
func (r *PostgresRepository) DetachFolder(ctx context.Context, folderID string) (int64, error) {
	query := `
		UPDATE notes
		SET folder_id = NULL
		WHERE folder_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, folderID)
	if err != nil {
		return 0, dbx.WrapError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

// EscapeLikePattern backslash-escapes the characters ILIKE treats specially,
// so the input matches as a literal substring.
func EscapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func (r *PostgresRepository) selectNotes(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.WrapError(err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.WrapError(err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*models.Note, error) {
	var (
		note models.Note
		tags []byte
	)
	if err := row.Scan(
		&note.ID, &note.UserID, &note.Title, &note.Content, &note.FolderID,
		&tags, &note.CreatedAt, &note.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &note.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return &note, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return b, nil
}
