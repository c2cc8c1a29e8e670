// SPDX-License-Identifier: MIT
// Package: mazegraph/maze
//
// options.go — functional options for construction and generation.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil).
//   • Construction and generation themselves never panic.
//   • Seeding is explicit through WithSeed or WithRand; later options win.

package maze

import (
	"context"
	"math/rand"
)

// Option customizes a Maze before its grid is allocated.
type Option func(*config)

// config is resolved once in New and copied into the Maze.
type config struct {
	rng       *rand.Rand // random source owned by the maze
	seed      int64      // seed that produced rng, when known
	seedKnown bool       // false only when the caller supplied rng directly
}

// WithSeed seeds the maze's random source with seed, used bit-for-bit.
// Two mazes with the same dimensions and seed carve identical passages.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = nil
		c.seed = seed
		c.seedKnown = true
	}
}

// WithRand hands the maze a caller-owned random source. The maze takes
// ownership: r must not be shared with other goroutines afterwards.
// Seed reports 0 and SeedKnown false for such mazes.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seed = 0
		c.seedKnown = false
	}
}

// newConfig applies opts in order and fills in a clock-derived seed when
// the caller supplied neither a seed nor a source.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		if !cfg.seedKnown {
			cfg.seed = clockSeed()
			cfg.seedKnown = true
		}
		cfg.rng = rngFromSeed(cfg.seed)
	}

	return cfg
}

// GenerateOption configures a single Generate call.
type GenerateOption func(*GenerateOptions)

// GenerateOptions holds the hooks and context of one generation run.
type GenerateOptions struct {
	// Ctx is checked once per carving step; cancellation aborts generation.
	Ctx context.Context

	// OnCarve is called after the wall between from and to is removed.
	OnCarve func(from, to Coord)

	// OnBacktrack is called when c has no unvisited neighbors left and is
	// popped from the carving stack.
	OnBacktrack func(c Coord)
}

// DefaultGenerateOptions returns a background context and no-op hooks.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Ctx:         context.Background(),
		OnCarve:     func(Coord, Coord) {},
		OnBacktrack: func(Coord) {},
	}
}

// WithContext sets the context checked between carving steps.
func WithContext(ctx context.Context) GenerateOption {
	return func(o *GenerateOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnCarve registers a callback invoked for every removed wall.
func WithOnCarve(fn func(from, to Coord)) GenerateOption {
	return func(o *GenerateOptions) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

// WithOnBacktrack registers a callback invoked for every backtrack pop.
func WithOnBacktrack(fn func(c Coord)) GenerateOption {
	return func(o *GenerateOptions) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}
