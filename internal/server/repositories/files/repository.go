package files

import (
	"context"

	"github.com/dmitrijs2005/cloudvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, file *models.SavedFile) (*models.SavedFile, error)
	GetByID(ctx context.Context, id int64) (*models.SavedFile, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.SavedFile, error)
	Delete(ctx context.Context, id int64) error
}
