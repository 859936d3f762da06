package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

// CreateNoteInput carries the typed arguments for NoteService.Create.
type CreateNoteInput struct {
	Title    string
	Content  string
	FolderID *string
	Tags     []string
}

// NotePatch carries a partial update for NoteService.Update.
//
// Title, Content and Tags use fallback semantics: an empty value leaves the
// stored field unchanged. FolderID is presence-based — FolderIDSet reports
// whether the patch mentioned the field at all, so a nil FolderID with
// FolderIDSet=true explicitly detaches the note from its folder.
type NotePatch struct {
	Title       string
	Content     string
	Tags        []string
	FolderID    *string
	FolderIDSet bool
}

// NoteService owns the note lifecycle: create, list, get, update, delete,
// search. Every single-note operation passes the ownership guard.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// List returns the caller's notes, most recently updated first.
func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).SelectByUser(ctx, userID)
}

// Get loads a note by ID and applies the ownership guard.
func (s *NoteService) Get(ctx context.Context, userID, id string) (*models.Note, error) {
	note, err := s.repomanager.Notes(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(note, userID); err != nil {
		return nil, err
	}
	return note, nil
}

// Create validates the input and persists a new note owned by userID.
// A supplied folder reference must name an existing folder of the same user.
func (s *NoteService) Create(ctx context.Context, userID string, input CreateNoteInput) (*models.Note, error) {
	if input.Title == "" || input.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrorValidation)
	}
	if input.FolderID != nil {
		if err := s.checkFolderRef(ctx, userID, *input.FolderID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	note := &models.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		FolderID:  input.FolderID,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	return s.repomanager.Notes(s.db).Create(ctx, note)
}

// Update loads the note, applies the ownership guard, merges the patch and
// persists the result with a refreshed updated_at. Empty title/content/tags
// in the patch keep the stored values; the folder reference changes only when
// the patch explicitly mentions it, and is re-verified against the caller's
// folders when set to a non-null value.
func (s *NoteService) Update(ctx context.Context, userID, id string, patch NotePatch) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)

	note, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(note, userID); err != nil {
		return nil, err
	}

	if patch.Title != "" {
		note.Title = patch.Title
	}
	if patch.Content != "" {
		note.Content = patch.Content
	}
	if len(patch.Tags) > 0 {
		note.Tags = patch.Tags
	}
	if patch.FolderIDSet {
		if patch.FolderID != nil {
			if err := s.checkFolderRef(ctx, userID, *patch.FolderID); err != nil {
				return nil, err
			}
		}
		note.FolderID = patch.FolderID
	}
	note.UpdatedAt = time.Now().UTC()

	if err := repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete loads the note, applies the ownership guard, and removes it.
func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Notes(s.db)

	note, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(note, userID); err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

// Search returns the caller's notes whose title or content contains query as
// a case-insensitive literal substring, most recently updated first.
func (s *NoteService) Search(ctx context.Context, userID, query string) ([]*models.Note, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", common.ErrorValidation)
	}
	return s.repomanager.Notes(s.db).Search(ctx, userID, query)
}

// checkFolderRef verifies that folderID names an existing folder owned by
// userID, using the same guard as direct folder access. A missing folder is
// a validation failure (the caller supplied a bad reference), a foreign one
// is unauthorized.
func (s *NoteService) checkFolderRef(ctx context.Context, userID, folderID string) error {
	folder, err := s.repomanager.Folders(s.db).GetByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("%w: folder %s does not exist", common.ErrorValidation, folderID)
		}
		return err
	}
	return authorizeOwner(folder, userID)
}
