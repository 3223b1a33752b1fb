package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"recipe-suggester/internal/models"
)

// FoodGrid shows one page of foods as cards, a status bar and the Quit button
type FoodGrid struct {
	container  *fyne.Container
	cards      *fyne.Container
	statusBar  *StatusBar
	QuitButton *widget.Button

	foods            []models.Food
	foodButtons      []*widget.Button
	learnMoreButtons []*widget.Button

	selectHandler    func(models.Food)
	learnMoreHandler func(models.Food)
	quitHandler      func()
}

func NewFoodGrid(columns int) *FoodGrid {
	if columns < 1 {
		columns = 1
	}
	grid := &FoodGrid{}
	grid.setupGrid(columns)
	return grid
}

func (g *FoodGrid) setupGrid(columns int) {
	g.cards = container.NewGridWithColumns(columns)
	g.statusBar = NewStatusBar()

	g.QuitButton = widget.NewButton("Quit", g.onQuit)

	bottom := container.NewVBox(
		g.statusBar.GetContainer(),
		container.NewCenter(g.QuitButton),
	)

	g.container = container.NewBorder(
		nil,
		bottom,
		nil, nil,
		container.NewPadded(container.NewVScroll(g.cards)),
	)
}

func (g *FoodGrid) GetContainer() *fyne.Container {
	return g.container
}

// SetFoods replaces every card with one per food, in order
func (g *FoodGrid) SetFoods(foods []models.Food) {
	g.foods = append([]models.Food(nil), foods...)
	g.foodButtons = g.foodButtons[:0]
	g.learnMoreButtons = g.learnMoreButtons[:0]

	objects := make([]fyne.CanvasObject, 0, len(g.foods))
	for _, food := range g.foods {
		objects = append(objects, g.newCard(food))
	}

	g.cards.Objects = objects
	g.cards.Refresh()
}

func (g *FoodGrid) newCard(food models.Food) fyne.CanvasObject {
	background := canvas.NewRectangle(CardGreen)
	background.StrokeColor = ButtonGreen
	background.StrokeWidth = 3
	background.CornerRadius = 8

	foodButton := widget.NewButton(food.Name, func() { g.onSelect(food) })
	foodButton.Importance = widget.HighImportance

	learnMoreButton := widget.NewButton("Learn More", func() { g.onLearnMore(food) })

	g.foodButtons = append(g.foodButtons, foodButton)
	g.learnMoreButtons = append(g.learnMoreButtons, learnMoreButton)

	return container.NewStack(
		background,
		container.NewPadded(container.NewVBox(foodButton, learnMoreButton)),
	)
}

func (g *FoodGrid) Foods() []models.Food {
	return append([]models.Food(nil), g.foods...)
}

// FoodButton returns the name button of the i-th card, nil when out of range
func (g *FoodGrid) FoodButton(i int) *widget.Button {
	if i < 0 || i >= len(g.foodButtons) {
		return nil
	}
	return g.foodButtons[i]
}

func (g *FoodGrid) LearnMoreButton(i int) *widget.Button {
	if i < 0 || i >= len(g.learnMoreButtons) {
		return nil
	}
	return g.learnMoreButtons[i]
}

func (g *FoodGrid) SetStatus(status string) {
	g.statusBar.SetStatus(status)
}

func (g *FoodGrid) Status() string {
	return g.statusBar.Status()
}

func (g *FoodGrid) StatusBar() *StatusBar {
	return g.statusBar
}

func (g *FoodGrid) SetSelectHandler(handler func(models.Food)) {
	g.selectHandler = handler
}

func (g *FoodGrid) SetLearnMoreHandler(handler func(models.Food)) {
	g.learnMoreHandler = handler
}

func (g *FoodGrid) SetQuitHandler(handler func()) {
	g.quitHandler = handler
}

func (g *FoodGrid) onSelect(food models.Food) {
	if g.selectHandler != nil {
		g.selectHandler(food)
	}
}

func (g *FoodGrid) onLearnMore(food models.Food) {
	if g.learnMoreHandler != nil {
		g.learnMoreHandler(food)
	}
}

func (g *FoodGrid) onQuit() {
	if g.quitHandler != nil {
		g.quitHandler()
	}
}
