package testgen

import (
	"errors"
	"fmt"
)

// ErrInvalidBound is returned when a ceiling is smaller than 1.
var ErrInvalidBound = errors.New("invalid bound")

// TestCase is one generated array.
type TestCase []int

// Suite is the output of a single generator run.
type Suite struct {
	Seed         int64
	MaxArraySize int
	MaxValue     int
	Cases        []TestCase
}

func (b Bounds) validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"max tests", b.MaxTests},
		{"max array size", b.MaxArraySize},
		{"max value", b.MaxValue},
	}
	for _, c := range checks {
		if c.value < 1 {
			return fmt.Errorf("%s must be at least 1, got %d: %w", c.name, c.value, ErrInvalidBound)
		}
	}
	return nil
}

// Generate draws a suite. The number of cases, the array size ceiling and the
// value ceiling are drawn once, in that order, before any case is generated.
//
// Example:
//
//	suite, err := testgen.Generate(testgen.WithSeed(7))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(suite.Cases))
func Generate(opts ...Option) (Suite, error) {
	o := newOptions(opts...)
	return generate(o)
}

func generate(o *options) (Suite, error) {
	if err := o.bounds.validate(); err != nil {
		return Suite{}, err
	}

	r := o.rnd
	numTestCases := between(r, o.bounds.MaxTests)
	maxArraySize := between(r, o.bounds.MaxArraySize)
	maxValue := between(r, o.bounds.MaxValue)

	o.logger.Debug("drew bounds",
		"seed", o.seed,
		"test_cases", numTestCases,
		"max_array_size", maxArraySize,
		"max_value", maxValue,
	)

	suite := Suite{
		Seed:         o.seed,
		MaxArraySize: maxArraySize,
		MaxValue:     maxValue,
		Cases:        make([]TestCase, 0, numTestCases),
	}
	for range numTestCases {
		size := between(r, maxArraySize)
		suite.Cases = append(suite.Cases, RandomArray(r, size, maxValue, o.sorted))
	}
	return suite, nil
}
