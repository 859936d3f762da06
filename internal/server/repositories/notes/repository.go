package notes

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	SelectByUser(ctx context.Context, userID string) ([]*models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, userID string, query string) ([]*models.Note, error)
	DetachFolder(ctx context.Context, folderID string) (int64, error)
}
