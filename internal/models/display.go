package models

import (
	"sync"
	"time"
)

// PageKind tells how a displayed page was produced
type PageKind int

const (
	PageNone PageKind = iota
	PageRandom
	PageSuggested
)

func (k PageKind) String() string {
	switch k {
	case PageRandom:
		return "random"
	case PageSuggested:
		return "suggested"
	default:
		return "none"
	}
}

// DisplayState represents what the grid currently shows
type DisplayState struct {
	Kind      PageKind
	Foods     []Food
	Selected  *Food
	PageCount int
	ShownAt   time.Time
}

// DisplayStateRepository tracks the page on screen between engine calls
type DisplayStateRepository struct {
	mu             sync.RWMutex
	state          DisplayState
	selectionCount int
}

// NewDisplayStateRepository creates an empty display state repository
func NewDisplayStateRepository() *DisplayStateRepository {
	return &DisplayStateRepository{
		state: DisplayState{Kind: PageNone},
	}
}

// GetState returns a copy of the current display state
func (r *DisplayStateRepository) GetState() DisplayState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := r.state
	state.Foods = append([]Food(nil), r.state.Foods...)
	if r.state.Selected != nil {
		selected := *r.state.Selected
		state.Selected = &selected
	}
	return state
}

// ShowRandomPage records a page drawn without a selection
func (r *DisplayStateRepository) ShowRandomPage(foods []Food) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = DisplayState{
		Kind:      PageRandom,
		Foods:     append([]Food(nil), foods...),
		PageCount: r.state.PageCount + 1,
		ShownAt:   time.Now(),
	}
}

// ShowSuggestions records a page produced for a selected food
func (r *DisplayStateRepository) ShowSuggestions(selected Food, foods []Food) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selectionCount++
	r.state = DisplayState{
		Kind:      PageSuggested,
		Foods:     append([]Food(nil), foods...),
		Selected:  &selected,
		PageCount: r.state.PageCount + 1,
		ShownAt:   time.Now(),
	}
}

// CurrentFoods returns the foods on screen in display order
func (r *DisplayStateRepository) CurrentFoods() []Food {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Food(nil), r.state.Foods...)
}

// Shown returns the foods on screen as a set, ready to be excluded from the next page
func (r *DisplayStateRepository) Shown() FoodSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return NewFoodSet(r.state.Foods...)
}

func (r *DisplayStateRepository) SelectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selectionCount
}

// Reset clears the page but keeps the counters
func (r *DisplayStateRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = DisplayState{Kind: PageNone, PageCount: r.state.PageCount}
}
