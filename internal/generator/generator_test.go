package generator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/sortbench/internal/config"
	"github.com/dbsmedya/sortbench/internal/record"
)

func seeded(seed int64) config.GeneratorConfig {
	cfg := config.DefaultConfig().Generator
	cfg.Seed = seed
	return cfg
}

func TestGenerate_Count(t *testing.T) {
	g := New(seeded(1))

	for _, n := range []int{0, 1, 10, 1000} {
		assert.Len(t, g.Generate(n), n)
	}

	t.Run("zero is empty, not nil", func(t *testing.T) {
		data := g.Generate(0)
		assert.NotNil(t, data)
		assert.Empty(t, data)
	})

	t.Run("negative is empty", func(t *testing.T) {
		assert.Empty(t, g.Generate(-5))
	})
}

func TestGenerate_Ranges(t *testing.T) {
	cfg := seeded(99)
	first := map[string]bool{}
	for _, n := range cfg.FirstNames {
		first[n] = true
	}
	last := map[string]bool{}
	for _, n := range cfg.LastNames {
		last[n] = true
	}

	for _, r := range New(cfg).Generate(5000) {
		assert.GreaterOrEqual(t, r.ID, int64(10000000))
		assert.LessOrEqual(t, r.ID, int64(99999999))

		assert.GreaterOrEqual(t, r.Score, 2.0)
		assert.LessOrEqual(t, r.Score, 4.0)
		assert.InDelta(t, math.Round(r.Score*100)/100, r.Score, 1e-9, "score %v not rounded", r.Score)

		parts := strings.Split(r.Name, " ")
		require.Len(t, parts, 2, "name %q", r.Name)
		assert.True(t, first[parts[0]], "unexpected first name %q", parts[0])
		assert.True(t, last[parts[1]], "unexpected last name %q", parts[1])
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	a := New(seeded(42)).Generate(100)
	b := New(seeded(42)).Generate(100)
	c := New(seeded(43)).Generate(100)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerate_CustomRanges(t *testing.T) {
	cfg := config.GeneratorConfig{
		Seed:       5,
		IDMin:      7,
		IDMax:      7,
		ScoreMin:   3.25,
		ScoreMax:   3.25,
		FirstNames: []string{"Ana"},
		LastNames:  []string{"Lima"},
	}

	for _, r := range New(cfg).Generate(20) {
		assert.Equal(t, int64(7), r.ID)
		assert.Equal(t, 3.25, r.Score)
		assert.Equal(t, "Ana Lima", r.Name)
	}
}

func TestGenerate_FullIDRange(t *testing.T) {
	cfg := seeded(11)
	cfg.IDMin = 0
	cfg.IDMax = math.MaxInt64
	g := New(cfg)

	var data []record.Record
	require.NotPanics(t, func() { data = g.Generate(200) })
	require.Len(t, data, 200)
	for _, r := range data {
		assert.GreaterOrEqual(t, r.ID, int64(0))
	}
}

func TestGenerate_SingleID(t *testing.T) {
	cfg := seeded(12)
	cfg.IDMin = math.MaxInt64
	cfg.IDMax = math.MaxInt64

	for _, r := range New(cfg).Generate(5) {
		assert.Equal(t, int64(math.MaxInt64), r.ID)
	}
}

func TestNew_ClockSeed(t *testing.T) {
	g := New(seeded(0))
	assert.Len(t, g.Generate(3), 3)
}
