package gui

import (
	"recipe-suggester/internal/debug"
	"recipe-suggester/internal/gui/components"
	"recipe-suggester/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Screen identifies which of the three views fills the window
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenGrid
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenGrid:
		return "grid"
	case ScreenDetail:
		return "detail"
	default:
		return "unknown"
	}
}

type Manager struct {
	window     fyne.Window
	logger     debug.Logger
	isShutdown bool

	root    *fyne.Container
	current Screen

	welcome *components.WelcomePanel
	grid    *components.FoodGrid
	detail  *components.FoodDetail
}

func NewManager(window fyne.Window, debugCoord debug.Coordinator, gridSize int) *Manager {
	logger := debugCoord.Logger()

	welcome := components.NewWelcomePanel()
	grid := components.NewFoodGrid(gridSize)
	detail := components.NewFoodDetail()

	manager := &Manager{
		window:  window,
		logger:  logger,
		root:    container.NewStack(welcome.GetContainer()),
		current: ScreenWelcome,
		welcome: welcome,
		grid:    grid,
		detail:  detail,
	}

	logger.Info("GUIManager", "initialized", map[string]interface{}{
		"grid_size": gridSize,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.root
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetStartHandler(handler func()) {
	m.welcome.SetStartHandler(func() {
		m.logger.Debug("GUIManager", "start requested", nil)
		handler()
	})
}

func (m *Manager) SetFoodSelectHandler(handler func(models.Food)) {
	m.grid.SetSelectHandler(func(food models.Food) {
		m.logger.Debug("GUIManager", "food selected", map[string]interface{}{
			"food": food.Name,
		})
		handler(food)
	})
}

func (m *Manager) SetLearnMoreHandler(handler func(models.Food)) {
	m.grid.SetLearnMoreHandler(handler)
}

func (m *Manager) SetBackHandler(handler func()) {
	m.detail.SetBackHandler(handler)
}

func (m *Manager) SetQuitHandler(handler func()) {
	m.grid.SetQuitHandler(handler)
}

func (m *Manager) ShowWelcome() {
	m.show(ScreenWelcome, m.welcome.GetContainer())
}

// ShowGrid fills the grid with foods and switches to it
func (m *Manager) ShowGrid(foods []models.Food, status string) {
	m.grid.SetFoods(foods)
	m.grid.SetStatus(status)
	m.show(ScreenGrid, m.grid.GetContainer())

	m.logger.Debug("GUIManager", "grid updated", map[string]interface{}{
		"foods": len(foods),
	})
}

// SetCounts updates the catalog size and pick count in the grid's status bar
func (m *Manager) SetCounts(catalogSize, selections int) {
	m.grid.StatusBar().SetCounts(catalogSize, selections)
}

// ReturnToGrid switches back to the grid without touching its cards
func (m *Manager) ReturnToGrid() {
	m.show(ScreenGrid, m.grid.GetContainer())
}

func (m *Manager) ShowDetail(food models.Food) {
	m.detail.SetFood(food)
	m.show(ScreenDetail, m.detail.GetContainer())
}

func (m *Manager) show(screen Screen, content fyne.CanvasObject) {
	m.root.Objects = []fyne.CanvasObject{content}
	m.root.Refresh()

	if screen != m.current {
		m.logger.Debug("GUIManager", "screen changed", map[string]interface{}{
			"from": m.current.String(),
			"to":   screen.String(),
		})
	}
	m.current = screen
}

func (m *Manager) CurrentScreen() Screen {
	return m.current
}

func (m *Manager) DisplayedFoods() []models.Food {
	return m.grid.Foods()
}

func (m *Manager) Welcome() *components.WelcomePanel {
	return m.welcome
}

func (m *Manager) Grid() *components.FoodGrid {
	return m.grid
}

func (m *Manager) Detail() *components.FoodDetail {
	return m.detail
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
