package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	foldersrepo "github.com/dmitrijs2005/notekeeper/internal/server/repositories/folders"
	notesrepo "github.com/dmitrijs2005/notekeeper/internal/server/repositories/notes"
	refreshtokensrepo "github.com/dmitrijs2005/notekeeper/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/notekeeper/internal/server/repositories/users"
)

// --- shared helpers & fakes for service tests ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr    error
	createErr error
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	return f.delErr
}

type fakeFoldersRepo struct {
	getOut *models.Folder
	getErr error

	selectOut []*models.Folder
	selectErr error

	createErr error
	created   *models.Folder

	delErr  error
	deleted []string
}

func (f *fakeFoldersRepo) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = folder
	return folder, nil
}

func (f *fakeFoldersRepo) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeFoldersRepo) SelectByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.selectOut, nil
}

func (f *fakeFoldersRepo) Delete(ctx context.Context, id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNotesRepo struct {
	getOut *models.Note
	getErr error

	selectOut []*models.Note
	selectErr error

	createErr error
	created   *models.Note

	updateErr error
	updated   *models.Note

	delErr  error
	deleted []string

	searchOut   []*models.Note
	searchErr   error
	searchQuery string

	detachN        int64
	detachErr      error
	detachedFolder string
}

func (f *fakeNotesRepo) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = note
	return note, nil
}

func (f *fakeNotesRepo) GetByID(ctx context.Context, id string) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeNotesRepo) SelectByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.selectOut, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, note *models.Note) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = note
	return nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeNotesRepo) Search(ctx context.Context, userID string, query string) ([]*models.Note, error) {
	f.searchQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchOut, nil
}

func (f *fakeNotesRepo) DetachFolder(ctx context.Context, folderID string) (int64, error) {
	if f.detachErr != nil {
		return 0, f.detachErr
	}
	f.detachedFolder = folderID
	return f.detachN, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	f *fakeFoldersRepo
	n *fakeNotesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }

func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }

func (m *fakeRepoManager) Folders(db dbx.DBTX) foldersrepo.Repository { return m.f }

func (m *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository { return m.n }
