package out

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
	categoryout "github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/port/out"
)

type catalogFile struct {
	Categories []catalogEntry `toml:"categories"`
}

type catalogEntry struct {
	Name         string  `toml:"name"`
	AnnualSalary float64 `toml:"annual_salary"`
}

// TOMLCatalogStore persists the catalog as a [[categories]] array. A
// missing file reads back as an empty catalog.
type TOMLCatalogStore struct {
	path string
}

func NewTOMLCatalogStore(path string) categoryout.CatalogStore {
	return &TOMLCatalogStore{path: path}
}

func (s *TOMLCatalogStore) Load(_ context.Context) ([]domain.Category, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	file := catalogFile{}
	if err := toml.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	categories := make([]domain.Category, 0, len(file.Categories))
	for _, entry := range file.Categories {
		category, err := domain.New(entry.Name, entry.AnnualSalary)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", entry.Name, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *TOMLCatalogStore) Save(_ context.Context, categories []domain.Category) error {
	file := catalogFile{Categories: make([]catalogEntry, 0, len(categories))}
	for _, category := range categories {
		file.Categories = append(file.Categories, catalogEntry{
			Name:         category.Name(),
			AnnualSalary: category.AnnualSalary(),
		})
	}
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(file); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
