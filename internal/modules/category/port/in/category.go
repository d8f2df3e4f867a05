package in

import (
	"context"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.CategoryOutput, error)
	Remove(ctx context.Context, name string) error
	List(ctx context.Context) ([]dto.CategoryOutput, error)
	Get(ctx context.Context, name string) (dto.CategoryOutput, error)
}
