package domain

import (
	"errors"
	"math"
	"strings"
)

// WorkHoursPerYear converts an annual salary into an hourly rate:
// 40 hours x 52 weeks. The constant is fixed, not configuration, since
// changing it silently rescales every displayed cost.
const WorkHoursPerYear = 2080

var (
	ErrEmptyName      = errors.New("category name must not be empty")
	ErrNegativeSalary = errors.New("annual salary must not be negative")
)

// Category is an immutable named annual salary. Instances are only built
// through New, so a Category in hand is always valid; rosters copy the
// value freely without sharing mutable state.
type Category struct {
	name         string
	annualSalary float64
}

// New validates and builds a Category. The name is trimmed; a blank name
// fails with ErrEmptyName, a negative or non-finite salary with
// ErrNegativeSalary. A zero salary is allowed (interns, observers).
func New(name string, annualSalary float64) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyName
	}
	if annualSalary < 0 || math.IsNaN(annualSalary) || math.IsInf(annualSalary, 0) {
		return Category{}, ErrNegativeSalary
	}
	return Category{name: name, annualSalary: annualSalary}, nil
}

func (c Category) Name() string {
	return c.name
}

func (c Category) AnnualSalary() float64 {
	return c.annualSalary
}

// HourlyRate is the per-person cost of one meeting hour.
func (c Category) HourlyRate() float64 {
	return c.annualSalary / WorkHoursPerYear
}
