package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"recipe-suggester/internal/models"
)

// FoodDetail shows the stored attributes of one food
type FoodDetail struct {
	container       *fyne.Container
	nameText        *canvas.Text
	typeLabel       *widget.Label
	dietLabel       *widget.Label
	cuisineLabel    *widget.Label
	ingredientLabel *widget.Label
	BackButton      *widget.Button

	food        models.Food
	backHandler func()
}

func NewFoodDetail() *FoodDetail {
	detail := &FoodDetail{}
	detail.setupDetail()
	return detail
}

func (d *FoodDetail) setupDetail() {
	d.nameText = canvas.NewText("", White)
	d.nameText.TextSize = HeadingTextSize
	d.nameText.TextStyle = fyne.TextStyle{Bold: true}
	d.nameText.Alignment = fyne.TextAlignCenter

	attributes := canvas.NewText("Attributes:", White)
	attributes.TextSize = SectionTextSize
	attributes.TextStyle = fyne.TextStyle{Bold: true}
	attributes.Alignment = fyne.TextAlignCenter

	d.typeLabel = newAttributeLabel()
	d.dietLabel = newAttributeLabel()
	d.cuisineLabel = newAttributeLabel()
	d.ingredientLabel = newAttributeLabel()
	d.ingredientLabel.Wrapping = fyne.TextWrapWord

	d.BackButton = widget.NewButton("Back", d.onBack)

	attributePanel := container.NewVBox(
		attributes,
		d.typeLabel,
		d.dietLabel,
		d.cuisineLabel,
		d.ingredientLabel,
	)

	d.container = container.NewBorder(
		container.NewPadded(d.nameText),
		container.NewPadded(d.BackButton),
		nil, nil,
		container.NewCenter(container.NewGridWrap(fyne.NewSize(600, 320), attributePanel)),
	)
}

func newAttributeLabel() *widget.Label {
	label := widget.NewLabel("")
	label.Alignment = fyne.TextAlignCenter
	return label
}

func (d *FoodDetail) GetContainer() *fyne.Container {
	return d.container
}

func (d *FoodDetail) SetFood(food models.Food) {
	d.food = food
	d.nameText.Text = food.Name
	d.nameText.Refresh()
	d.typeLabel.SetText("Type: " + food.SweetOrSavory)
	d.dietLabel.SetText("Diet: " + food.DietType)
	d.cuisineLabel.SetText("Cuisine: " + food.Cuisine)
	d.ingredientLabel.SetText("Ingredients: " + strings.Join(food.Ingredients, ", "))
}

func (d *FoodDetail) Food() models.Food {
	return d.food
}

// Lines returns the attribute lines as shown, top to bottom
func (d *FoodDetail) Lines() []string {
	return []string{
		d.typeLabel.Text,
		d.dietLabel.Text,
		d.cuisineLabel.Text,
		d.ingredientLabel.Text,
	}
}

func (d *FoodDetail) SetBackHandler(handler func()) {
	d.backHandler = handler
}

func (d *FoodDetail) onBack() {
	if d.backHandler != nil {
		d.backHandler()
	}
}
