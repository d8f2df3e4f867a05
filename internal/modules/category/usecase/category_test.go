package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	categoryout "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/adapter/out"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/dto"
	categoryin "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/port/in"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/service"
	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/usecase"
	apperrors "github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/errors"
)

func newCatalog(t *testing.T, path string) categoryin.Usecase {
	t.Helper()
	return usecase.NewInteractor(service.NewCatalogService(categoryout.NewTOMLCatalogStore(path)))
}

func TestAddListRemovePersistsAcrossRestarts(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "categories.toml")
	uc := newCatalog(t, path)

	added, err := uc.Add(context.Background(), dto.AddInput{Name: "Engineer", AnnualSalary: 120000})
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if added.HourlyRate != 120000.0/domain.WorkHoursPerYear {
		t.Fatalf("unexpected hourly rate: %v", added.HourlyRate)
	}
	if _, err := uc.Add(context.Background(), dto.AddInput{Name: "Manager", AnnualSalary: 150000}); err != nil {
		t.Fatalf("add second category: %v", err)
	}

	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Engineer" || list[1].Name != "Manager" {
		t.Fatalf("unexpected list result: %+v", list)
	}

	// a fresh interactor over the same file sees the saved catalog
	restarted := newCatalog(t, path)
	list, err = restarted.List(context.Background())
	if err != nil {
		t.Fatalf("list after restart: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Engineer" {
		t.Fatalf("catalog did not survive restart: %+v", list)
	}

	if err := restarted.Remove(context.Background(), "Engineer"); err != nil {
		t.Fatalf("remove category: %v", err)
	}
	if _, err := restarted.Get(context.Background(), "Engineer"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found after remove, got %v", err)
	}
	list, err = restarted.List(context.Background())
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Manager" {
		t.Fatalf("unexpected list after remove: %+v", list)
	}
}

func TestAddRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	uc := newCatalog(t, filepath.Join(t.TempDir(), "categories.toml"))

	if _, err := uc.Add(context.Background(), dto.AddInput{Name: "Engineer", AnnualSalary: 120000}); err != nil {
		t.Fatalf("add category: %v", err)
	}
	if _, err := uc.Add(context.Background(), dto.AddInput{Name: "Engineer", AnnualSalary: 90000}); !errors.Is(err, apperrors.ErrCategoryExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	// names are compared after trimming
	if _, err := uc.Add(context.Background(), dto.AddInput{Name: "  Engineer  ", AnnualSalary: 90000}); !errors.Is(err, apperrors.ErrCategoryExists) {
		t.Fatalf("expected trimmed duplicate error, got %v", err)
	}
}

func TestAddPropagatesDomainValidation(t *testing.T) {
	t.Parallel()
	uc := newCatalog(t, filepath.Join(t.TempDir(), "categories.toml"))

	if _, err := uc.Add(context.Background(), dto.AddInput{Name: "   ", AnnualSalary: 100}); !errors.Is(err, domain.ErrEmptyName) {
		t.Fatalf("expected empty name error, got %v", err)
	}
	if _, err := uc.Add(context.Background(), dto.AddInput{Name: "Engineer", AnnualSalary: -1}); !errors.Is(err, domain.ErrNegativeSalary) {
		t.Fatalf("expected negative salary error, got %v", err)
	}
}

func TestRemoveUnknownCategoryFails(t *testing.T) {
	t.Parallel()
	uc := newCatalog(t, filepath.Join(t.TempDir(), "categories.toml"))

	if err := uc.Remove(context.Background(), "Ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListOnMissingFileIsEmpty(t *testing.T) {
	t.Parallel()
	uc := newCatalog(t, filepath.Join(t.TempDir(), "categories.toml"))

	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty catalog, got %+v", list)
	}
}
