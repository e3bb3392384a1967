package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestCompactTheme_UsesResolvedVariant(t *testing.T) {
	dark := false
	th := NewCompactTheme(func() bool { return dark })

	light := th.Color(theme.ColorNameBackground, theme.VariantDark)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, light)

	dark = true
	assert.Equal(t, color.RGBA{R: 17, G: 24, B: 39, A: 255}, th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, th.Color(theme.ColorNameForeground, theme.VariantLight))
}

func TestCompactTheme_DelegatesOtherColors(t *testing.T) {
	th := NewCompactTheme(func() bool { return true })

	expected := theme.DefaultTheme().Color(theme.ColorNameDisabled, theme.VariantDark)
	assert.Equal(t, expected, th.Color(theme.ColorNameDisabled, theme.VariantLight))
}

func TestCompactTheme_Sizes(t *testing.T) {
	th := NewCompactTheme(nil)

	assert.Equal(t, float32(3), th.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
}
