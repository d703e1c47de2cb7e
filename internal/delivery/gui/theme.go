package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// quizTheme is the default theme with a user-selected text size and an
// optional font that has Arabic glyphs.
type quizTheme struct {
	fyne.Theme
	textSize float32
	font     fyne.Resource
}

func newQuizTheme(size int, font fyne.Resource) *quizTheme {
	return &quizTheme{
		Theme:    theme.DefaultTheme(),
		textSize: float32(size),
		font:     font,
	}
}

func (t *quizTheme) Size(name fyne.ThemeSizeName) float32 {
	base := t.Theme.Size(theme.SizeNameText)
	switch name {
	case theme.SizeNameText:
		return t.textSize
	case theme.SizeNameHeadingText, theme.SizeNameSubHeadingText, theme.SizeNameCaptionText:
		// keep the default proportions
		return t.Theme.Size(name) * t.textSize / base
	}
	return t.Theme.Size(name)
}

func (t *quizTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Monospace && !style.Symbol {
		return t.font
	}
	return t.Theme.Font(style)
}

// loadFont reads a TTF file; an empty path means the toolkit font.
func loadFont(path string) (fyne.Resource, error) {
	if path == "" {
		return nil, nil
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	return res, nil
}
