package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

func strPtr(s string) *string { return &s }

func TestNoteGet_OwnerOnly(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{n: &fakeNotesRepo{
		getOut: &models.Note{ID: "n-1", UserID: "owner"},
	}}
	s := NewNoteService(db, rm)

	if _, err := s.Get(context.Background(), "owner", "n-1"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	_, err := s.Get(context.Background(), "intruder", "n-1")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestNoteGet_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{n: &fakeNotesRepo{getErr: common.ErrorNotFound}}
	s := NewNoteService(db, rm)

	_, err := s.Get(context.Background(), "u-1", "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestNoteCreate_RequiresTitleAndContent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewNoteService(db, &fakeRepoManager{n: &fakeNotesRepo{}})

	for _, input := range []CreateNoteInput{
		{Title: "", Content: "c"},
		{Title: "t", Content: ""},
	} {
		_, err := s.Create(context.Background(), "u-1", input)
		if !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("input %+v: want ErrorValidation, got %v", input, err)
		}
	}
}

func TestNoteCreate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	notes := &fakeNotesRepo{}
	s := NewNoteService(db, &fakeRepoManager{n: notes})

	got, err := s.Create(context.Background(), "u-1", CreateNoteInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" || got.UserID != "u-1" {
		t.Fatalf("unexpected note: %+v", got)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Fatalf("nil tags must normalize to empty slice: %+v", got.Tags)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Fatal("fresh note must have created_at == updated_at")
	}
	if notes.created != got {
		t.Fatal("note not persisted")
	}
}

func TestNoteCreate_FolderMustExist(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		n: &fakeNotesRepo{},
		f: &fakeFoldersRepo{getErr: common.ErrorNotFound},
	}
	s := NewNoteService(db, rm)

	_, err := s.Create(context.Background(), "u-1",
		CreateNoteInput{Title: "t", Content: "c", FolderID: strPtr("ghost")})
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("missing folder reference must be a validation error, got %v", err)
	}
}

func TestNoteCreate_ForeignFolderRejected(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		n: &fakeNotesRepo{},
		f: &fakeFoldersRepo{getOut: &models.Folder{ID: "f-1", UserID: "someone-else"}},
	}
	s := NewNoteService(db, rm)

	_, err := s.Create(context.Background(), "u-1",
		CreateNoteInput{Title: "t", Content: "c", FolderID: strPtr("f-1")})
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("foreign folder reference must be unauthorized, got %v", err)
	}
}

func existingNote() *models.Note {
	return &models.Note{
		ID: "n-1", UserID: "u-1",
		Title: "Old title", Content: "old content",
		FolderID: strPtr("f-1"), Tags: []string{"keep"},
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestNoteUpdate_EmptyFieldsKeepStoredValues(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	notes := &fakeNotesRepo{getOut: existingNote()}
	s := NewNoteService(db, &fakeRepoManager{n: notes})

	got, err := s.Update(context.Background(), "u-1", "n-1", NotePatch{Content: "new content"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Title != "Old title" {
		t.Fatalf("empty patch title must keep stored value, got %q", got.Title)
	}
	if got.Content != "new content" {
		t.Fatalf("content = %q, want new content", got.Content)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "keep" {
		t.Fatalf("empty patch tags must keep stored value, got %+v", got.Tags)
	}
	if got.FolderID == nil || *got.FolderID != "f-1" {
		t.Fatal("unmentioned folderId must keep stored value")
	}
	if !got.UpdatedAt.After(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("updated_at must be refreshed")
	}
	if notes.updated != got {
		t.Fatal("note not persisted")
	}
}

func TestNoteUpdate_ExplicitNullDetachesFolder(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	notes := &fakeNotesRepo{getOut: existingNote()}
	s := NewNoteService(db, &fakeRepoManager{n: notes})

	got, err := s.Update(context.Background(), "u-1", "n-1",
		NotePatch{FolderID: nil, FolderIDSet: true})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.FolderID != nil {
		t.Fatalf("explicit null must detach the folder, got %v", *got.FolderID)
	}
}

func TestNoteUpdate_MoveVerifiesTargetFolder(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		n: &fakeNotesRepo{getOut: existingNote()},
		f: &fakeFoldersRepo{getOut: &models.Folder{ID: "f-2", UserID: "someone-else"}},
	}
	s := NewNoteService(db, rm)

	_, err := s.Update(context.Background(), "u-1", "n-1",
		NotePatch{FolderID: strPtr("f-2"), FolderIDSet: true})
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("move into foreign folder must be unauthorized, got %v", err)
	}
}

func TestNoteUpdate_ForeignNoteRejected(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	notes := &fakeNotesRepo{getOut: existingNote()}
	s := NewNoteService(db, &fakeRepoManager{n: notes})

	_, err := s.Update(context.Background(), "intruder", "n-1", NotePatch{Title: "hijack"})
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
	if notes.updated != nil {
		t.Fatal("rejected update must not persist anything")
	}
}

func TestNoteDelete_ForeignNoteRejected(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	notes := &fakeNotesRepo{getOut: existingNote()}
	s := NewNoteService(db, &fakeRepoManager{n: notes})

	err := s.Delete(context.Background(), "intruder", "n-1")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
	if len(notes.deleted) != 0 {
		t.Fatal("rejected delete must not remove anything")
	}
}

func TestNoteDelete_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	notes := &fakeNotesRepo{getOut: existingNote()}
	s := NewNoteService(db, &fakeRepoManager{n: notes})

	if err := s.Delete(context.Background(), "u-1", "n-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(notes.deleted) != 1 || notes.deleted[0] != "n-1" {
		t.Fatalf("deleted = %+v, want [n-1]", notes.deleted)
	}
}

func TestNoteSearch_EmptyQuery(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewNoteService(db, &fakeRepoManager{n: &fakeNotesRepo{}})

	_, err := s.Search(context.Background(), "u-1", "")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestNoteSearch_Delegates(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	notes := &fakeNotesRepo{searchOut: []*models.Note{{ID: "n-1", UserID: "u-1"}}}
	s := NewNoteService(db, &fakeRepoManager{n: notes})

	got, err := s.Search(context.Background(), "u-1", "milk")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 1 || notes.searchQuery != "milk" {
		t.Fatalf("unexpected result %v / query %q", got, notes.searchQuery)
	}
}
