package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	WelcomeTitle       = "Welcome to Recipe Suggester!"
	WelcomeDescription = "Discover delicious foods tailored to your taste!\n\n" +
		"We'll show you foods from around the world. Click your favorite, and we'll suggest more you'll love!\n" +
		"Explore details about each dish and find your next craving."
)

type WelcomePanel struct {
	container   *fyne.Container
	StartButton *widget.Button

	startHandler func()
}

func NewWelcomePanel() *WelcomePanel {
	panel := &WelcomePanel{}
	panel.setupPanel()
	return panel
}

func (p *WelcomePanel) setupPanel() {
	title := canvas.NewText(WelcomeTitle, White)
	title.TextSize = TitleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(WelcomeDescription)
	description.Wrapping = fyne.TextWrapWord
	description.Alignment = fyne.TextAlignCenter

	p.StartButton = widget.NewButton("Find Recipes", p.onStart)
	p.StartButton.Importance = widget.HighImportance

	p.container = container.NewCenter(
		container.NewVBox(
			title,
			container.NewGridWrap(fyne.NewSize(640, 180), description),
			container.NewCenter(p.StartButton),
		),
	)
}

func (p *WelcomePanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *WelcomePanel) SetStartHandler(handler func()) {
	p.startHandler = handler
}

func (p *WelcomePanel) onStart() {
	if p.startHandler != nil {
		p.startHandler()
	}
}
