package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Andrewsimsd/meeting-cost-tracker/internal/modules/category/domain"
)

func TestNewValidCategory(t *testing.T) {
	t.Parallel()
	cat, err := domain.New("Engineer", 120_000)
	if err != nil {
		t.Fatalf("valid category should build: %v", err)
	}
	if cat.Name() != "Engineer" {
		t.Fatalf("expected name Engineer, got %q", cat.Name())
	}
	if cat.AnnualSalary() != 120_000 {
		t.Fatalf("expected salary 120000, got %f", cat.AnnualSalary())
	}
	if cat.HourlyRate() != 120_000.0/2080.0 {
		t.Fatalf("expected hourly rate %f, got %f", 120_000.0/2080.0, cat.HourlyRate())
	}
}

func TestNewTrimsName(t *testing.T) {
	t.Parallel()
	cat, err := domain.New("  Designer  ", 80_000)
	if err != nil {
		t.Fatalf("padded name should build: %v", err)
	}
	if cat.Name() != "Designer" {
		t.Fatalf("expected trimmed name, got %q", cat.Name())
	}
}

func TestNewRejectsBlankName(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := domain.New(name, 50_000); !errors.Is(err, domain.ErrEmptyName) {
			t.Fatalf("name %q should fail with ErrEmptyName, got %v", name, err)
		}
	}
}

func TestNewRejectsBadSalary(t *testing.T) {
	t.Parallel()
	for _, salary := range []float64{-1, -120_000, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := domain.New("Engineer", salary); !errors.Is(err, domain.ErrNegativeSalary) {
			t.Fatalf("salary %f should fail with ErrNegativeSalary, got %v", salary, err)
		}
	}
}

func TestNewAllowsZeroSalary(t *testing.T) {
	t.Parallel()
	cat, err := domain.New("Intern", 0)
	if err != nil {
		t.Fatalf("zero salary should be valid: %v", err)
	}
	if cat.HourlyRate() != 0 {
		t.Fatalf("expected zero hourly rate, got %f", cat.HourlyRate())
	}
}
