package suggest

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-suggester/internal/models"
)

func food(name, taste, diet, cuisine string, ingredients ...string) models.Food {
	return models.NewFood(name, taste, diet, cuisine, ingredients, name+".png")
}

func names(foods []models.Food) []string {
	out := make([]string, len(foods))
	for i, f := range foods {
		out[i] = f.Name
	}
	return out
}

func newTestEngine(t *testing.T, cfg *Config, seed int64) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg, nil, WithShuffler(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	return engine
}

// exampleCatalog holds A plus two sweet Italian-or-French neighbours and one savory outlier.
func exampleCatalog() []models.Food {
	return []models.Food{
		food("A", "sweet", "veg", "Italian", "flour", "sugar"),
		food("B", "sweet", "veg", "Italian", "flour", "egg"),
		food("C", "sweet", "veg", "French", "flour", "sugar"),
		food("D", "savory", "veg", "Italian", "rice"),
	}
}

func TestSharedIngredientCount(t *testing.T) {
	catalog := exampleCatalog()
	assert.Equal(t, 1, SharedIngredientCount(catalog[0], catalog[1]))
	assert.Equal(t, 2, SharedIngredientCount(catalog[0], catalog[2]))
	assert.Equal(t, 0, SharedIngredientCount(catalog[0], catalog[3]))

	dupes := food("X", "sweet", "veg", "Italian", "flour", "flour", "sugar")
	assert.Equal(t, 2, SharedIngredientCount(dupes, catalog[0]), "duplicates count once")
	assert.Equal(t, SharedIngredientCount(catalog[1], catalog[0]), SharedIngredientCount(catalog[0], catalog[1]))
}

func TestSuggestWorkedExample(t *testing.T) {
	catalog := exampleCatalog()
	engine := newTestEngine(t, nil, 1)

	ranked := engine.Rank(catalog, catalog[0], models.NewFoodSet(catalog[0]))
	assert.Equal(t, []string{"B", "C"}, names(ranked))

	got := engine.Suggest(catalog, catalog[0], 3, nil)
	assert.Equal(t, []string{"B", "C", "D"}, names(got))
}

func TestRankTierPrecedence(t *testing.T) {
	selected := food("Sel", "sweet", "veg", "Italian", "a", "b", "c")
	catalog := []models.Food{
		selected,
		food("TasteOnlyBest", "sweet", "vegan", "Thai", "a", "b", "c"),
		food("RelaxedBest", "sweet", "veg", "French", "a", "b", "c"),
		food("ExactWeak", "sweet", "veg", "Italian"),
		food("Savory", "savory", "veg", "Italian", "a", "b", "c"),
	}

	engine := newTestEngine(t, nil, 1)
	detailed := engine.RankDetailed(catalog, selected, nil)

	require.Len(t, detailed, 3)
	assert.Equal(t, "ExactWeak", detailed[0].Food.Name)
	assert.Equal(t, TierExact, detailed[0].Tier)
	assert.Equal(t, 0, detailed[0].Shared)
	assert.Equal(t, "RelaxedBest", detailed[1].Food.Name)
	assert.Equal(t, TierCuisineRelaxed, detailed[1].Tier)
	assert.Equal(t, 3, detailed[1].Shared)
	assert.Equal(t, "TasteOnlyBest", detailed[2].Food.Name)
	assert.Equal(t, TierTasteOnly, detailed[2].Tier)
}

func TestRankTierCutoffCountsEarlierTiers(t *testing.T) {
	selected := food("Sel", "sweet", "veg", "Italian", "a")
	catalog := []models.Food{
		food("Exact", "sweet", "veg", "Italian"),
		food("Relaxed1", "sweet", "veg", "Greek", "a"),
		food("Relaxed2", "sweet", "veg", "French"),
		food("TasteOnly", "sweet", "vegan", "Thai", "a"),
	}

	engine := newTestEngine(t, nil, 1)
	assert.Equal(t, []string{"Exact", "Relaxed1", "Relaxed2"}, names(engine.Rank(catalog, selected, nil)))
}

func TestRankStopsRelaxingAtMinimum(t *testing.T) {
	selected := food("Sel", "savory", "veg", "Indian", "rice")
	catalog := []models.Food{
		food("E1", "savory", "veg", "Indian", "rice"),
		food("E2", "savory", "veg", "Indian"),
		food("E3", "savory", "veg", "Indian", "rice", "dal"),
		food("R1", "savory", "veg", "Nepali", "rice"),
	}

	engine := newTestEngine(t, nil, 1)
	assert.Equal(t, []string{"E1", "E3", "E2"}, names(engine.Rank(catalog, selected, nil)))

	cfg := DefaultConfig()
	cfg.MinRanked = 4
	engine = newTestEngine(t, cfg, 1)
	assert.Equal(t, []string{"E1", "E3", "E2", "R1"}, names(engine.Rank(catalog, selected, nil)))
}

func TestRankStableWithinTier(t *testing.T) {
	selected := food("Sel", "sweet", "veg", "Italian", "x")
	catalog := []models.Food{
		food("First", "sweet", "veg", "Italian", "y"),
		food("Second", "sweet", "veg", "Italian", "x"),
		food("Third", "sweet", "veg", "Italian", "z"),
		food("Fourth", "sweet", "veg", "Italian", "x"),
	}

	engine := newTestEngine(t, nil, 1)
	want := []string{"Second", "Fourth", "First", "Third"}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, names(engine.Rank(catalog, selected, nil)))
	}
}

func TestRankDeduplicatesByName(t *testing.T) {
	selected := food("Sel", "sweet", "veg", "Italian", "x")
	catalog := []models.Food{
		food("Gelato", "sweet", "veg", "Italian", "x"),
		food("GELATO", "sweet", "veg", "French", "x"),
		food("gelato", "sweet", "vegan", "Thai", "x"),
		food("SEL", "sweet", "veg", "Italian", "x"),
	}

	engine := newTestEngine(t, nil, 1)
	assert.Equal(t, []string{"Gelato"}, names(engine.Rank(catalog, selected, nil)))
}

func TestSuggestExcludesPriorlyShownFromTiers(t *testing.T) {
	catalog := exampleCatalog()
	engine := newTestEngine(t, nil, 1)

	got := engine.Suggest(catalog, catalog[0], 3, models.NewFoodSet(catalog[1]))
	assert.Equal(t, []string{"C", "D"}, names(got))
}

func TestSuggestUnknownSelection(t *testing.T) {
	catalog := exampleCatalog()
	engine := newTestEngine(t, nil, 1)

	stranger := food("Kimchi", "sour", "vegan", "Korean", "cabbage")
	got := engine.Suggest(catalog, stranger, 9, nil)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, names(got))
}

func TestSuggestNonPositiveDisplaySize(t *testing.T) {
	engine := newTestEngine(t, nil, 1)
	assert.Empty(t, engine.Suggest(exampleCatalog(), exampleCatalog()[0], 0, nil))
	assert.Empty(t, engine.Suggest(exampleCatalog(), exampleCatalog()[0], -1, nil))
	assert.Empty(t, engine.RandomPage(exampleCatalog(), 0))
}

func TestSuggestTruncation(t *testing.T) {
	selected := food("Sel", "sweet", "veg", "Italian", "a", "b", "c", "d")
	catalog := []models.Food{selected}
	for i := 0; i < 6; i++ {
		ingredients := []string{"a", "b", "c", "d"}[:4-i%4]
		catalog = append(catalog, food(fmt.Sprintf("F%d", i), "sweet", "veg", "Italian", ingredients...))
	}

	engine := newTestEngine(t, nil, 7)
	ranked := engine.Rank(catalog, selected, models.NewFoodSet(selected))
	require.Len(t, ranked, 6)

	got := engine.Suggest(catalog, selected, 3, nil)
	assert.Equal(t, names(ranked[:3]), names(got))

	cfg := DefaultConfig()
	cfg.Truncate = TruncateShuffled
	shuffled := newTestEngine(t, cfg, 7)
	got = shuffled.Suggest(catalog, selected, 3, nil)
	require.Len(t, got, 3)
	assert.Subset(t, names(ranked), names(got))
}

func TestSuggestShuffledTruncationIsSeeded(t *testing.T) {
	selected := food("Sel", "sweet", "veg", "Italian", "a")
	var catalog []models.Food
	for i := 0; i < 20; i++ {
		catalog = append(catalog, food(fmt.Sprintf("F%02d", i), "sweet", "veg", "Italian", "a"))
	}

	cfg := DefaultConfig()
	cfg.Truncate = TruncateShuffled

	first := newTestEngine(t, cfg, 42).Suggest(catalog, selected, 9, nil)
	second := newTestEngine(t, cfg, 42).Suggest(catalog, selected, 9, nil)
	assert.Equal(t, names(first), names(second))
}

func TestRandomPage(t *testing.T) {
	var catalog []models.Food
	for i := 0; i < 15; i++ {
		catalog = append(catalog, food(fmt.Sprintf("F%02d", i), "sweet", "veg", "Italian"))
	}

	engine := newTestEngine(t, nil, 3)
	page := engine.RandomPage(catalog, 9)
	require.Len(t, page, 9)
	assert.Subset(t, names(catalog), names(page))
	assert.Equal(t, 9, models.NewFoodSet(page...).Len())
	assert.Equal(t, "F00", catalog[0].Name, "catalog must not be reordered")

	small := engine.RandomPage(catalog[:4], 9)
	assert.ElementsMatch(t, names(catalog[:4]), names(small))

	again := newTestEngine(t, nil, 3).RandomPage(catalog, 9)
	assert.Equal(t, names(page), names(again))
}

func TestRandomPageOneFoodPerName(t *testing.T) {
	catalog := []models.Food{
		food("a", "sweet", "veg", "Italian", "flour"),
		food("A", "savory", "vegan", "French", "rice"),
		food("b", "sweet", "veg", "Italian", "sugar"),
	}

	page := newTestEngine(t, nil, 7).RandomPage(catalog, 9)
	require.Len(t, page, 2)
	assert.ElementsMatch(t, []string{"a", "b"}, names(page), "first occurrence of a name is kept")
}

func TestSuggestDoesNotMutateInputs(t *testing.T) {
	catalog := exampleCatalog()
	before := names(catalog)
	shown := models.NewFoodSet(catalog[3])

	newTestEngine(t, nil, 1).Suggest(catalog, catalog[0], 9, shown)

	assert.Equal(t, before, names(catalog))
	assert.Equal(t, 1, shown.Len())
}

// randomCatalog builds a catalog with few attribute values so every tier is populated.
func randomCatalog(r *rand.Rand, n int) []models.Food {
	tastes := []string{"sweet", "savory"}
	diets := []string{"vegetarian", "vegan", "non-vegetarian"}
	cuisines := []string{"Italian", "French", "Thai", "Indian"}
	pantry := []string{"flour", "sugar", "egg", "rice", "garlic", "milk", "chili", "basil"}

	catalog := make([]models.Food, 0, n)
	for i := 0; i < n; i++ {
		var ingredients []string
		for k := 0; k < 1+r.Intn(4); k++ {
			ingredients = append(ingredients, pantry[r.Intn(len(pantry))])
		}
		name := fmt.Sprintf("Food%d", i)
		if i%7 == 3 {
			// case-variant duplicate of an earlier name
			name = fmt.Sprintf("FOOD%d", i-1)
		}
		catalog = append(catalog, food(name,
			tastes[r.Intn(len(tastes))],
			diets[r.Intn(len(diets))],
			cuisines[r.Intn(len(cuisines))],
			ingredients...))
	}
	return catalog
}

func TestSuggestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	for trial := 0; trial < 200; trial++ {
		catalog := randomCatalog(r, 2+r.Intn(30))
		selected := catalog[r.Intn(len(catalog))]
		displaySize := 1 + r.Intn(12)

		shown := models.NewFoodSet()
		for _, f := range catalog {
			if r.Intn(4) == 0 {
				shown.Add(f)
			}
		}

		cfg := DefaultConfig()
		if trial%2 == 1 {
			cfg.Truncate = TruncateShuffled
		}
		engine := newTestEngine(t, cfg, int64(trial))
		got := engine.Suggest(catalog, selected, displaySize, shown)

		exclude := shown.Union(models.NewFoodSet(selected))
		eligible := models.NewFoodSet()
		for _, f := range catalog {
			if !exclude.Contains(f) {
				eligible.Add(f)
			}
		}

		require.LessOrEqual(t, len(got), displaySize, "trial %d", trial)
		if eligible.Len() >= displaySize {
			require.Len(t, got, displaySize, "trial %d", trial)
		} else {
			require.Len(t, got, eligible.Len(), "trial %d", trial)
		}

		seen := models.NewFoodSet()
		for _, f := range got {
			require.False(t, seen.Contains(f), "trial %d: duplicate %s", trial, f.Name)
			seen.Add(f)
			require.False(t, f.Equal(selected), "trial %d: selected returned", trial)
			require.False(t, shown.Contains(f), "trial %d: priorly shown %s returned", trial, f.Name)
		}

		ranked := engine.RankDetailed(catalog, selected, exclude)
		for i := 1; i < len(ranked); i++ {
			prev, cur := ranked[i-1], ranked[i]
			require.LessOrEqual(t, prev.Tier, cur.Tier, "trial %d: tier order", trial)
			if prev.Tier == cur.Tier {
				require.GreaterOrEqual(t, prev.Shared, cur.Shared, "trial %d: overlap order", trial)
			}
		}
		require.Equal(t, names(engine.Rank(catalog, selected, exclude)), names(engine.Rank(catalog, selected, exclude)))

		if cfg.Truncate == TruncateRanked {
			n := len(ranked)
			if n > displaySize {
				n = displaySize
			}
			for i := 0; i < n; i++ {
				require.Equal(t, ranked[i].Food.Name, got[i].Name, "trial %d: ranked prefix", trial)
			}
		}
	}
}

func TestParseTruncateMode(t *testing.T) {
	mode, err := ParseTruncateMode("shuffle")
	require.NoError(t, err)
	assert.Equal(t, TruncateShuffled, mode)
	assert.Equal(t, "shuffle", mode.String())

	mode, err = ParseTruncateMode("")
	require.NoError(t, err)
	assert.Equal(t, TruncateRanked, mode)

	_, err = ParseTruncateMode("random")
	assert.Error(t, err)
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	_, err := NewEngine(&Config{MinRanked: -1}, nil)
	assert.Error(t, err)

	_, err = NewEngine(&Config{Truncate: TruncateMode(9)}, nil)
	assert.Error(t, err)
}

func TestTierMatches(t *testing.T) {
	selected := food("Sel", "sweet", "veg", "Italian")
	tests := []struct {
		candidate models.Food
		want      map[Tier]bool
	}{
		{food("x", "sweet", "veg", "Italian"), map[Tier]bool{TierExact: true, TierCuisineRelaxed: true, TierTasteOnly: true}},
		{food("x", "sweet", "veg", "French"), map[Tier]bool{TierExact: false, TierCuisineRelaxed: true, TierTasteOnly: true}},
		{food("x", "sweet", "vegan", "Italian"), map[Tier]bool{TierExact: false, TierCuisineRelaxed: false, TierTasteOnly: true}},
		{food("x", "savory", "veg", "Italian"), map[Tier]bool{TierExact: false, TierCuisineRelaxed: false, TierTasteOnly: false}},
		{food("x", "Sweet", "veg", "Italian"), map[Tier]bool{TierExact: false, TierCuisineRelaxed: false, TierTasteOnly: false}},
	}

	for _, tt := range tests {
		for tier, want := range tt.want {
			assert.Equal(t, want, tier.Matches(tt.candidate, selected), "%s %s/%s/%s", tier,
				tt.candidate.SweetOrSavory, tt.candidate.DietType, tt.candidate.Cuisine)
		}
	}
}
