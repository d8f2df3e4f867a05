package dto

type AddInput struct {
	Name         string
	AnnualSalary float64
}

type CategoryOutput struct {
	Name         string
	AnnualSalary float64
	HourlyRate   float64
}
