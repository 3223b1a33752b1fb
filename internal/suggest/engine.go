// Package suggest ranks catalog foods by their similarity to a selected food.
//
// Candidates are gathered in tiers that relax the attribute match one step at a
// time (taste, diet and cuisine; then taste and diet; then taste alone). Within a
// tier candidates are ordered by how many ingredients they share with the
// selection. A tier boundary always outranks ingredient overlap.
package suggest

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"recipe-suggester/internal/logger"
	"recipe-suggester/internal/models"
)

const DefaultMinRanked = 3

// TruncateMode chooses how a ranked list longer than the page is cut down
type TruncateMode int

const (
	// TruncateRanked keeps the best-ranked entries
	TruncateRanked TruncateMode = iota
	// TruncateShuffled shuffles the whole ranked list and keeps a random subset
	TruncateShuffled
)

func (m TruncateMode) String() string {
	switch m {
	case TruncateShuffled:
		return "shuffle"
	default:
		return "ranked"
	}
}

// ParseTruncateMode accepts "ranked" or "shuffle"
func ParseTruncateMode(s string) (TruncateMode, error) {
	switch s {
	case "ranked", "":
		return TruncateRanked, nil
	case "shuffle", "shuffled":
		return TruncateShuffled, nil
	default:
		return TruncateRanked, fmt.Errorf("unknown truncate mode %q", s)
	}
}

// Shuffler permutes n elements through swap; *rand.Rand satisfies it
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type Config struct {
	// MinRanked is the candidate count below which the next tier is consulted
	MinRanked int
	Truncate  TruncateMode
	// Seed fixes the random source; zero seeds from the clock
	Seed int64
}

func DefaultConfig() *Config {
	return &Config{
		MinRanked: DefaultMinRanked,
		Truncate:  TruncateRanked,
	}
}

func (c *Config) Validate() error {
	if c.MinRanked < 0 {
		return fmt.Errorf("min ranked must not be negative, got %d", c.MinRanked)
	}
	if c.Truncate != TruncateRanked && c.Truncate != TruncateShuffled {
		return fmt.Errorf("unknown truncate mode %d", c.Truncate)
	}
	return nil
}

type Option func(*Engine)

// WithShuffler replaces the engine's random source
func WithShuffler(s Shuffler) Option {
	return func(e *Engine) {
		e.shuffler = s
	}
}

// Engine produces suggestion pages. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger logger.Logger

	shuffler Shuffler
	mu       sync.Mutex
}

func NewEngine(cfg *Config, log logger.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := &Engine{
		config:   cfg,
		logger:   log,
		shuffler: rand.New(rand.NewSource(seed)), //nolint:gosec // shuffling a page does not need crypto randomness
	}
	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

// SharedIngredientCount returns the size of the intersection of both ingredient sets
func SharedIngredientCount(a, b models.Food) int {
	setB := b.IngredientSet()
	count := 0
	for ingredient := range a.IngredientSet() {
		if _, ok := setB[ingredient]; ok {
			count++
		}
	}
	return count
}

// Suggest returns at most displaySize foods similar to selected. Neither selected
// nor any member of priorlyShown appears in the result.
func (e *Engine) Suggest(catalog []models.Food, selected models.Food, displaySize int, priorlyShown models.FoodSet) []models.Food {
	if displaySize <= 0 {
		return []models.Food{}
	}

	exclude := priorlyShown.Union(models.NewFoodSet(selected))
	ranked := e.Rank(catalog, selected, exclude)
	rankedCount := len(ranked)

	var result []models.Food
	switch {
	case len(ranked) < displaySize:
		result = e.pad(ranked, catalog, exclude, displaySize)
	case len(ranked) > displaySize:
		result = e.truncate(ranked, displaySize)
	default:
		result = ranked
	}

	e.logger.Debug("Engine", "suggestions computed", map[string]interface{}{
		"selected":     selected.Name,
		"ranked":       rankedCount,
		"excluded":     exclude.Len(),
		"returned":     len(result),
		"display_size": displaySize,
	})

	return result
}

// RandomPage returns up to displaySize foods drawn uniformly from the catalog,
// at most one per name
func (e *Engine) RandomPage(catalog []models.Food, displaySize int) []models.Food {
	if displaySize <= 0 {
		return []models.Food{}
	}

	seen := make(models.FoodSet, len(catalog))
	page := make([]models.Food, 0, len(catalog))
	for _, food := range catalog {
		if seen.Contains(food) {
			continue
		}
		seen.Add(food)
		page = append(page, food)
	}
	e.shuffle(page)
	if len(page) > displaySize {
		page = page[:displaySize]
	}

	e.logger.Debug("Engine", "random page drawn", map[string]interface{}{
		"catalog_size": len(catalog),
		"returned":     len(page),
	})

	return page
}

func (e *Engine) pad(ranked, catalog []models.Food, exclude models.FoodSet, displaySize int) []models.Food {
	taken := models.NewFoodSet(ranked...)

	pool := make([]models.Food, 0, len(catalog))
	for _, food := range catalog {
		if taken.Contains(food) || exclude.Contains(food) {
			continue
		}
		// marks the key so a later duplicate name cannot enter the pool twice
		taken.Add(food)
		pool = append(pool, food)
	}
	e.shuffle(pool)

	result := append(make([]models.Food, 0, displaySize), ranked...)
	for _, food := range pool {
		if len(result) >= displaySize {
			break
		}
		result = append(result, food)
	}
	return result
}

func (e *Engine) truncate(ranked []models.Food, displaySize int) []models.Food {
	result := append([]models.Food(nil), ranked...)
	if e.config.Truncate == TruncateShuffled {
		e.shuffle(result)
	}
	return result[:displaySize]
}

func (e *Engine) shuffle(foods []models.Food) {
	if len(foods) < 2 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.shuffler.Shuffle(len(foods), func(i, j int) {
		foods[i], foods[j] = foods[j], foods[i]
	})
}
