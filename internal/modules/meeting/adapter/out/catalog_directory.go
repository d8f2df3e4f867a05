package out

import (
	"context"

	categorydomain "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
	categoryin "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/port/in"
	meetingout "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/meeting/port/out"
)

// CatalogDirectory adapts the category module's usecase to the meeting
// module's CategoryDirectory port.
type CatalogDirectory struct {
	categories categoryin.Usecase
}

func NewCatalogDirectory(categories categoryin.Usecase) meetingout.CategoryDirectory {
	return &CatalogDirectory{categories: categories}
}

func (d *CatalogDirectory) Lookup(ctx context.Context, name string) (categorydomain.Category, error) {
	output, err := d.categories.Get(ctx, name)
	if err != nil {
		return categorydomain.Category{}, err
	}
	return categorydomain.New(output.Name, output.AnnualSalary)
}
