package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

// FolderService owns the folder lifecycle: create, list, delete-with-cascade.
type FolderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewFolderService constructs a FolderService.
func NewFolderService(db *sql.DB, m repomanager.RepositoryManager) *FolderService {
	return &FolderService{db: db, repomanager: m}
}

// List returns the caller's folders, newest first.
func (s *FolderService) List(ctx context.Context, userID string) ([]*models.Folder, error) {
	return s.repomanager.Folders(s.db).SelectByUser(ctx, userID)
}

// Create validates the name, applies the default color when none is given,
// and persists a new folder owned by userID. The color value itself is not
// re-validated here; the schema's check constraint is the enforcement point.
func (s *FolderService) Create(ctx context.Context, userID, name, color string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is required", common.ErrorValidation)
	}
	if len(name) > common.MaxFolderNameLength {
		return nil, fmt.Errorf("%w: folder name cannot be more than %d characters",
			common.ErrorValidation, common.MaxFolderNameLength)
	}
	if color == "" {
		color = common.DefaultFolderColor
	}

	folder := &models.Folder{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
	return s.repomanager.Folders(s.db).Create(ctx, folder)
}

// Delete removes the caller's folder. After the ownership guard passes, the
// cascade (detaching every note that references the folder) and the folder
// removal run in one transaction, so a dangling folder reference is never
// durably observable. Returns the number of notes detached. A cascade
// failure rolls everything back and surfaces common.ErrorCascade.
func (s *FolderService) Delete(ctx context.Context, userID, folderID string) (int64, error) {
	folder, err := s.repomanager.Folders(s.db).GetByID(ctx, folderID)
	if err != nil {
		return 0, err
	}
	if err := authorizeOwner(folder, userID); err != nil {
		return 0, err
	}

	var detached int64
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.Notes(tx).DetachFolder(ctx, folderID)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrorCascade, err)
		}
		detached = n

		return s.repomanager.Folders(tx).Delete(ctx, folderID)
	})
	if err != nil {
		if errors.Is(err, common.ErrorCascade) {
			return 0, err
		}
		return 0, fmt.Errorf("error deleting folder: %w", err)
	}

	return detached, nil
}
