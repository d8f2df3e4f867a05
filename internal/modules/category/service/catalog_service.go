package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
	categoryout "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/port/out"
	apperrors "github.com/Andrewsimsd/meeting-cost-tracker/internal/platform/errors"
)

// CatalogService keeps the salary category catalog in memory and writes
// every mutation through to the store before committing it. Catalog order
// is insertion order; names are unique after trimming.
type CatalogService struct {
	store categoryout.CatalogStore

	mu         sync.Mutex
	categories []domain.Category
	loaded     bool
}

func NewCatalogService(store categoryout.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) Add(ctx context.Context, name string, annualSalary float64) (domain.Category, error) {
	category, err := domain.New(name, annualSalary)
	if err != nil {
		return domain.Category{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Category{}, err
	}
	for _, existing := range s.categories {
		if existing.Name() == category.Name() {
			return domain.Category{}, fmt.Errorf("%w: %s", apperrors.ErrCategoryExists, category.Name())
		}
	}
	next := append(append([]domain.Category(nil), s.categories...), category)
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Category{}, fmt.Errorf("save catalog: %w", err)
	}
	s.categories = next
	return category, nil
}

func (s *CatalogService) Remove(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	next := make([]domain.Category, 0, len(s.categories))
	found := false
	for _, existing := range s.categories {
		if existing.Name() == name {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		return fmt.Errorf("%w: category %q", apperrors.ErrNotFound, name)
	}
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	s.categories = next
	return nil
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return append([]domain.Category(nil), s.categories...), nil
}

func (s *CatalogService) Get(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Category{}, err
	}
	for _, existing := range s.categories {
		if existing.Name() == name {
			return existing, nil
		}
	}
	return domain.Category{}, fmt.Errorf("%w: category %q", apperrors.ErrNotFound, name)
}

func (s *CatalogService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	categories, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	s.categories = categories
	s.loaded = true
	return nil
}
