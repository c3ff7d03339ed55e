package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	colorBackground = color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}
	colorInput      = color.NRGBA{R: 0x34, G: 0x49, B: 0x5e, A: 0xff}
	colorText       = color.NRGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}
	colorButton     = color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	colorPrimary    = color.NRGBA{R: 0x29, G: 0x80, B: 0xb9, A: 0xff}
	colorOperator   = color.NRGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff}
	colorFunction   = color.NRGBA{R: 0x27, G: 0xae, B: 0x60, A: 0xff}
	colorEquals     = color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	colorDisabled   = color.NRGBA{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff}
)

// calculatorTheme is a dark theme in the calculator's palette. Button roles
// map to importances: operators warning, functions success, equals danger.
type calculatorTheme struct {
	base fyne.Theme
}

// NewTheme returns the calculator theme.
func NewTheme() fyne.Theme {
	return &calculatorTheme{base: theme.DefaultTheme()}
}

func (t *calculatorTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return colorBackground
	case theme.ColorNameInputBackground:
		return colorInput
	case theme.ColorNameForeground:
		return colorText
	case theme.ColorNameButton:
		return colorButton
	case theme.ColorNamePrimary:
		return colorPrimary
	case theme.ColorNameWarning:
		return colorOperator
	case theme.ColorNameSuccess:
		return colorFunction
	case theme.ColorNameError:
		return colorEquals
	case theme.ColorNameDisabledButton:
		return colorDisabled
	}
	return t.base.Color(name, theme.VariantDark)
}

func (t *calculatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *calculatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *calculatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNamePadding:
		return 6
	}
	return t.base.Size(name)
}
