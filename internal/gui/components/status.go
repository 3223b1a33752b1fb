package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar sits under the grid: a message on the left, counters on the right
type StatusBar struct {
	container      *fyne.Container
	statusLabel    *widget.Label
	catalogLabel   *widget.Label
	selectionLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("")
	catalogLabel := widget.NewLabel("Foods: --")
	selectionLabel := widget.NewLabel("Picks: 0")

	countersContainer := container.NewHBox(
		catalogLabel,
		widget.NewSeparator(),
		selectionLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		countersContainer,
	)

	return &StatusBar{
		container:      mainContainer,
		statusLabel:    statusLabel,
		catalogLabel:   catalogLabel,
		selectionLabel: selectionLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetCounts(catalogSize, selections int) {
	sb.catalogLabel.SetText(fmt.Sprintf("Foods: %d", catalogSize))
	sb.selectionLabel.SetText(fmt.Sprintf("Picks: %d", selections))
}

func (sb *StatusBar) Counts() string {
	return sb.catalogLabel.Text + " | " + sb.selectionLabel.Text
}
