package out

import (
	"context"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
)

// CatalogStore persists the salary category catalog between runs.
type CatalogStore interface {
	Load(ctx context.Context) ([]domain.Category, error)
	Save(ctx context.Context, categories []domain.Category) error
}
