package suggest

import (
	"sort"

	"recipe-suggester/internal/models"
)

// Tier is one relaxation level of the attribute match
type Tier int

const (
	// TierExact matches taste, diet and cuisine
	TierExact Tier = iota
	// TierCuisineRelaxed matches taste and diet
	TierCuisineRelaxed
	// TierTasteOnly matches taste
	TierTasteOnly
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierCuisineRelaxed:
		return "cuisine-relaxed"
	case TierTasteOnly:
		return "taste-only"
	default:
		return "unknown"
	}
}

// Matches reports whether candidate satisfies the tier's attribute criteria against selected
func (t Tier) Matches(candidate, selected models.Food) bool {
	if candidate.SweetOrSavory != selected.SweetOrSavory {
		return false
	}
	if t >= TierTasteOnly {
		return true
	}
	if candidate.DietType != selected.DietType {
		return false
	}
	if t >= TierCuisineRelaxed {
		return true
	}
	return candidate.Cuisine == selected.Cuisine
}

var tiers = []Tier{TierExact, TierCuisineRelaxed, TierTasteOnly}

// Ranked is a candidate with the tier it was found in and its ingredient overlap
type Ranked struct {
	Food   models.Food
	Tier   Tier
	Shared int
}

// Rank returns the tiered candidates for selected before any padding or
// truncation. Foods in exclude never appear.
func (e *Engine) Rank(catalog []models.Food, selected models.Food, exclude models.FoodSet) []models.Food {
	ranked := e.RankDetailed(catalog, selected, exclude)
	foods := make([]models.Food, len(ranked))
	for i, r := range ranked {
		foods[i] = r.Food
	}
	return foods
}

// RankDetailed is Rank with the tier and overlap of each candidate
func (e *Engine) RankDetailed(catalog []models.Food, selected models.Food, exclude models.FoodSet) []Ranked {
	collected := models.NewFoodSet(selected)
	var result []Ranked

	for i, tier := range tiers {
		if i > 0 && len(result) >= e.config.MinRanked {
			break
		}

		var candidates []Ranked
		for _, food := range catalog {
			if collected.Contains(food) || exclude.Contains(food) || !tier.Matches(food, selected) {
				continue
			}
			collected.Add(food)
			candidates = append(candidates, Ranked{
				Food:   food,
				Tier:   tier,
				Shared: SharedIngredientCount(food, selected),
			})
		}

		sort.SliceStable(candidates, func(a, b int) bool {
			return candidates[a].Shared > candidates[b].Shared
		})
		result = append(result, candidates...)
	}

	return result
}
