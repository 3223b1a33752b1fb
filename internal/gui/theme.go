package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"recipe-suggester/internal/gui/components"
)

// recipeTheme is the dark variant of the default theme with the green palette
type recipeTheme struct {
	base fyne.Theme
}

func NewTheme() fyne.Theme {
	return &recipeTheme{base: theme.DefaultTheme()}
}

func (t *recipeTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return components.DarkGreen
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return components.ButtonGreen
	case theme.ColorNameButton:
		return components.CardGreen
	case theme.ColorNameForeground:
		return components.White
	}
	return t.base.Color(name, theme.VariantDark)
}

func (t *recipeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *recipeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *recipeTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return 16
	}
	return t.base.Size(name)
}
