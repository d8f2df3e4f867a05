package in

import (
	"context"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/dto"
	categoryin "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/port/in"
)

type CLIHandler struct {
	usecase categoryin.Usecase
}

func NewCLIHandler(usecase categoryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, name string, annualSalary float64) (dto.CategoryOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Name: name, AnnualSalary: annualSalary})
}

func (h CLIHandler) Remove(ctx context.Context, name string) error {
	return h.usecase.Remove(ctx, name)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.CategoryOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, name string) (dto.CategoryOutput, error) {
	return h.usecase.Get(ctx, name)
}
