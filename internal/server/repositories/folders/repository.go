package folders

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, folder *models.Folder) (*models.Folder, error)
	GetByID(ctx context.Context, id string) (*models.Folder, error)
	SelectByUser(ctx context.Context, userID string) ([]*models.Folder, error)
	Delete(ctx context.Context, id string) error
}
