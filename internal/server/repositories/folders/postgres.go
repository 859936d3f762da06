// Package folders provides a PostgreSQL-backed repository for folder
// persistence.
package folders

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// PostgresRepository implements folder storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new folder. ID, color and timestamp are expected to be
// populated by the caller.
func (r *PostgresRepository) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	query := `
		INSERT INTO folders (id, user_id, name, color, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.ExecContext(ctx, query,
		folder.ID, folder.UserID, folder.Name, folder.Color, folder.CreatedAt); err != nil {
		return nil, dbx.WrapError(err)
	}

	return folder, nil
}

// GetByID loads a folder by ID regardless of owner; the ownership check
// happens in the service layer. Returns common.ErrorNotFound if absent.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := `
		SELECT id, user_id, name, color, created_at FROM folders
		WHERE id = $1
	`

	folder := &models.Folder{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&folder.ID, &folder.UserID, &folder.Name, &folder.Color, &folder.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.WrapError(err)
	}

	return folder, nil
}

// SelectByUser returns all folders owned by userID, newest first.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	query := `
		SELECT id, user_id, name, color, created_at FROM folders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dbx.WrapError(err)
	}
	defer rows.Close()

	var result []*models.Folder
	for rows.Next() {
		var item models.Folder
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Color, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.WrapError(err)
	}
	return result, nil
}

// Delete removes a folder by ID. Deleting an already-absent folder is not an
// error; existence is checked by the service before the guard runs.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM folders
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return dbx.WrapError(err)
	}
	return nil
}
