package components

import "image/color"

var (
	DarkGreen   = color.NRGBA{R: 20, G: 45, B: 30, A: 255}
	ButtonGreen = color.NRGBA{R: 36, G: 155, B: 84, A: 255}
	CardGreen   = color.NRGBA{R: 30, G: 64, B: 44, A: 255}
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	TitleTextSize   = 36
	HeadingTextSize = 44
	SectionTextSize = 25
)
