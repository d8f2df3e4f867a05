package usecase

import (
	"context"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/dto"
	categoryin "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/port/in"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) categoryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.CategoryOutput, error) {
	category, err := i.svc.Add(ctx, input.Name, input.AnnualSalary)
	if err != nil {
		return dto.CategoryOutput{}, err
	}
	return toOutput(category), nil
}

func (i *Interactor) Remove(ctx context.Context, name string) error {
	return i.svc.Remove(ctx, name)
}

func (i *Interactor) List(ctx context.Context) ([]dto.CategoryOutput, error) {
	categories, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		out = append(out, toOutput(category))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, name string) (dto.CategoryOutput, error) {
	category, err := i.svc.Get(ctx, name)
	if err != nil {
		return dto.CategoryOutput{}, err
	}
	return toOutput(category), nil
}

func toOutput(category domain.Category) dto.CategoryOutput {
	return dto.CategoryOutput{
		Name:         category.Name(),
		AnnualSalary: category.AnnualSalary(),
		HourlyRate:   category.HourlyRate(),
	}
}
