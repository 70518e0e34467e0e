package testgen

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Bounds holds the ceilings that the per-run draws are taken from.
type Bounds struct {
	MaxTests     int
	MaxArraySize int
	MaxValue     int
}

// DefaultBounds returns the ceilings used when no WithBounds option is given.
func DefaultBounds() Bounds {
	return Bounds{
		MaxTests:     20,
		MaxArraySize: 50,
		MaxValue:     5000,
	}
}

type options struct {
	seed          int64
	rnd           Rand
	bounds        Bounds
	sorted        bool
	trailingSpace bool
	logger        *slog.Logger
}

// Option is a configuration option for Generate, Run and Debug.
//
// Example:
//
//	err := testgen.Run(os.Stdout,
//	    testgen.WithSeed(42),
//	    testgen.WithSorted(true),
//	)
type Option interface {
	apply(*options)
}

func newOptions(opts ...Option) *options {
	o := &options{
		seed:   time.Now().Unix(),
		bounds: DefaultBounds(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt.apply(o)
	}
	if o.rnd == nil {
		o.rnd = NewRand(o.seed)
	}
	return o
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// WithSeed seeds the generator. Without it the current Unix time in seconds is used.
func WithSeed(seed int64) Option {
	return optionFunc(func(o *options) {
		o.seed = seed
	})
}

// WithRand replaces the seeded generator. It takes precedence over WithSeed.
func WithRand(r Rand) Option {
	return optionFunc(func(o *options) {
		o.rnd = r
	})
}

// WithBounds replaces the default ceilings of 20 cases, 50 values per array and 5000 per value.
func WithBounds(b Bounds) Option {
	return optionFunc(func(o *options) {
		o.bounds = b
	})
}

// WithSorted sorts every generated array in ascending order.
func WithSorted(sorted bool) Option {
	return optionFunc(func(o *options) {
		o.sorted = sorted
	})
}

// WithTrailingSpace writes a space after every value of an array line,
// matching the byte layout of the legacy generator.
func WithTrailingSpace(trailing bool) Option {
	return optionFunc(func(o *options) {
		o.trailingSpace = trailing
	})
}

// WithLogger sets the logger that receives the seed and drawn bounds. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	})
}

// NewRand returns the PCG-backed generator used for a given seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}
