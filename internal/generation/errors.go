// Package generation fabricates the synthetic recruiting datasets. Every
// generator is a function of an explicit population.Model and its inputs, so
// a fixed seed reproduces the same dataset.
package generation

import "errors"

var (
	// ErrInvalidPopulation is returned for negative or zero population sizes.
	ErrInvalidPopulation = errors.New("invalid population size")

	// ErrInvalidMonthRange is returned when the trend end month precedes the start month.
	ErrInvalidMonthRange = errors.New("invalid month range")

	// ErrInvalidChannelSpec is returned for channel configurations that cannot
	// satisfy hired <= applicants or cost >= 0.
	ErrInvalidChannelSpec = errors.New("invalid channel spec")
)
