package graph

import (
	"unicode/utf8"
)

const FontSize = 12.0

// Measurer reports the pixel extent of label text in the active font.
type Measurer interface {
	TextWidth(string) float64
	TextHeight() float64
}

// MeasureFuncs adapts a pair of functions to the Measurer interface.
type MeasureFuncs struct {
	Width  func(string) float64
	Height func() float64
}

func (m MeasureFuncs) TextWidth(str string) float64 {
	if m.Width == nil {
		return 0
	}
	return m.Width(str)
}

func (m MeasureFuncs) TextHeight() float64 {
	if m.Height == nil {
		return 0
	}
	return m.Height()
}

// FontMetrics approximates text extent from the font size alone.
type FontMetrics struct {
	Size float64
}

func (f FontMetrics) TextWidth(str string) float64 {
	return float64(utf8.RuneCountInString(str)) * f.size() * 0.6
}

func (f FontMetrics) TextHeight() float64 {
	return f.size() * 1.2
}

func (f FontMetrics) size() float64 {
	if f.Size <= 0 {
		return FontSize
	}
	return f.Size
}
