package app

import (
	"context"
	"fmt"

	"recipe-suggester/internal/debug"
	"recipe-suggester/internal/gui"
	"recipe-suggester/internal/models"
	"recipe-suggester/internal/suggest"
)

const (
	opRandomPage = "random_page"
	opSuggest    = "suggest"
)

type Handlers struct {
	engine      *suggest.Engine
	state       *models.DisplayStateRepository
	guiManager  *gui.Manager
	debugCoord  debug.Coordinator
	logger      debug.Logger
	catalog     models.Catalog
	displaySize int

	quitHandler func()
}

func NewHandlers(engine *suggest.Engine, state *models.DisplayStateRepository, gm *gui.Manager,
	dc debug.Coordinator, catalog models.Catalog, displaySize int) *Handlers {
	return &Handlers{
		engine:      engine,
		state:       state,
		guiManager:  gm,
		debugCoord:  dc,
		logger:      dc.Logger(),
		catalog:     catalog,
		displaySize: displaySize,
	}
}

// SetQuitHandler sets what runs after the Quit button has been handled
func (h *Handlers) SetQuitHandler(handler func()) {
	h.quitHandler = handler
}

func (h *Handlers) HandleStart() {
	tracker := h.debugCoord.TimingTracker()
	ctx := tracker.StartTiming(context.Background(), opRandomPage)
	foods := h.engine.RandomPage(h.catalog, h.displaySize)
	elapsed := tracker.EndTiming(ctx)

	h.state.ShowRandomPage(foods)
	page := h.state.GetState().PageCount

	h.logger.Debug("Handlers", "random page shown", map[string]interface{}{
		"foods":    len(foods),
		"page":     page,
		"duration": elapsed.String(),
	})

	h.guiManager.ShowGrid(foods, fmt.Sprintf("Page %d: pick the food you like best", page))
	h.guiManager.SetCounts(h.catalog.Len(), h.state.SelectionCount())
}

// HandleFoodSelected replaces the page with suggestions for food; the page on
// screen is never suggested again right away
func (h *Handlers) HandleFoodSelected(food models.Food) {
	priorlyShown := h.state.Shown()

	tracker := h.debugCoord.TimingTracker()
	ctx := tracker.StartTiming(context.Background(), opSuggest)
	foods := h.engine.Suggest(h.catalog, food, h.displaySize, priorlyShown)
	elapsed := tracker.EndTiming(ctx)

	h.logger.Debug("Handlers", "suggestions computed", map[string]interface{}{
		"selected":      food.Name,
		"priorly_shown": priorlyShown.Len(),
		"suggestions":   len(foods),
		"duration":      elapsed.String(),
	})

	if len(foods) == 0 {
		h.logger.Warning("Handlers", "no foods left to suggest", map[string]interface{}{
			"selected": food.Name,
		})
		h.guiManager.Grid().SetStatus(fmt.Sprintf("No more foods to suggest after %s", food.Name))
		return
	}

	h.state.ShowSuggestions(food, foods)
	page := h.state.GetState().PageCount

	h.guiManager.ShowGrid(foods, fmt.Sprintf("Page %d: because you picked %s", page, food.Name))
	h.guiManager.SetCounts(h.catalog.Len(), h.state.SelectionCount())
}

func (h *Handlers) HandleLearnMore(food models.Food) {
	h.logger.Debug("Handlers", "showing food details", map[string]interface{}{
		"food": food.Name,
	})
	h.guiManager.ShowDetail(food)
}

func (h *Handlers) HandleBack() {
	h.guiManager.ReturnToGrid()
}

func (h *Handlers) HandleQuit() {
	h.logger.Info("Handlers", "quit requested", map[string]interface{}{
		"selections": h.state.SelectionCount(),
	})
	if h.quitHandler != nil {
		h.quitHandler()
	}
}
