// Package generator produces random student records.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/dbsmedya/sortbench/internal/config"
	"github.com/dbsmedya/sortbench/internal/record"
)

// Generator draws records from the ranges of a GeneratorConfig.
// It is not safe for concurrent use.
type Generator struct {
	cfg config.GeneratorConfig
	rng *rand.Rand
}

// New creates a Generator. A zero cfg.Seed seeds from the clock, any other
// value makes the output reproducible.
func New(cfg config.GeneratorConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns exactly n independently drawn records.
// n <= 0 yields an empty slice.
func (g *Generator) Generate(n int) []record.Record {
	if n < 0 {
		n = 0
	}
	data := make([]record.Record, n)
	for i := range data {
		data[i] = g.Record()
	}
	return data
}

// Record draws a single record.
func (g *Generator) Record() record.Record {
	return record.Record{
		ID:    g.id(),
		Name:  g.name(),
		Score: g.score(),
	}
}

// id is uniform in [IDMin, IDMax]. A span covering every non-negative int64
// cannot be passed to Int63n, so it draws from Int63 directly.
func (g *Generator) id() int64 {
	span := g.cfg.IDMax - g.cfg.IDMin
	if span == math.MaxInt64 {
		return g.cfg.IDMin + g.rng.Int63()
	}
	return g.cfg.IDMin + g.rng.Int63n(span+1)
}

func (g *Generator) name() string {
	first := g.cfg.FirstNames[g.rng.Intn(len(g.cfg.FirstNames))]
	last := g.cfg.LastNames[g.rng.Intn(len(g.cfg.LastNames))]
	return first + " " + last
}

// score is uniform in [ScoreMin, ScoreMax], rounded to two decimals.
func (g *Generator) score() float64 {
	v := g.cfg.ScoreMin + g.rng.Float64()*(g.cfg.ScoreMax-g.cfg.ScoreMin)
	return math.Round(v*100) / 100
}
