package models

import "strings"

// Food represents a single catalog entry with its categorical attributes
type Food struct {
	Name          string
	SweetOrSavory string
	DietType      string
	Cuisine       string
	Ingredients   []string
	ImageRef      string
}

// NewFood copies the ingredient slice so the returned value shares no storage with the caller
func NewFood(name, sweetOrSavory, dietType, cuisine string, ingredients []string, imageRef string) Food {
	return Food{
		Name:          name,
		SweetOrSavory: sweetOrSavory,
		DietType:      dietType,
		Cuisine:       cuisine,
		Ingredients:   append([]string(nil), ingredients...),
		ImageRef:      imageRef,
	}
}

// Key returns the identity of a food: its lower-cased name
func (f Food) Key() string {
	return strings.ToLower(f.Name)
}

// Equal reports whether both foods carry the same name, ignoring case
func (f Food) Equal(other Food) bool {
	return f.Key() == other.Key()
}

// IngredientSet returns the distinct ingredients of the food
func (f Food) IngredientSet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.Ingredients))
	for _, ingredient := range f.Ingredients {
		set[ingredient] = struct{}{}
	}
	return set
}

// IngredientList returns a copy of the ingredients in source order
func (f Food) IngredientList() []string {
	return append([]string(nil), f.Ingredients...)
}

func (f Food) String() string {
	return f.Name
}

// Catalog is the ordered, session-long list of foods
type Catalog []Food

func (c Catalog) Len() int {
	return len(c)
}

// Find looks a food up by name, ignoring case
func (c Catalog) Find(name string) (Food, bool) {
	key := strings.ToLower(name)
	for _, food := range c {
		if food.Key() == key {
			return food, true
		}
	}
	return Food{}, false
}

// FoodSet holds foods keyed by name identity
type FoodSet map[string]Food

func NewFoodSet(foods ...Food) FoodSet {
	set := make(FoodSet, len(foods))
	for _, food := range foods {
		set.Add(food)
	}
	return set
}

// Add keeps the first food seen for a given key
func (s FoodSet) Add(food Food) {
	if _, exists := s[food.Key()]; !exists {
		s[food.Key()] = food
	}
}

func (s FoodSet) Contains(food Food) bool {
	_, exists := s[food.Key()]
	return exists
}

func (s FoodSet) Len() int {
	return len(s)
}

// Union returns a new set with the members of both sets
func (s FoodSet) Union(other FoodSet) FoodSet {
	result := make(FoodSet, len(s)+len(other))
	for k, v := range s {
		result[k] = v
	}
	for k, v := range other {
		if _, exists := result[k]; !exists {
			result[k] = v
		}
	}
	return result
}

// Foods returns the members in no particular order
func (s FoodSet) Foods() []Food {
	foods := make([]Food, 0, len(s))
	for _, food := range s {
		foods = append(foods, food)
	}
	return foods
}
