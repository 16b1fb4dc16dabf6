package rendering

import (
	"math"
	"strings"

	"github.com/go-drift/loom/pkg/graphics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is used when a TextStyle has no font size.
const DefaultFontSize = 18

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    graphics.Color
	FontSize float64
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and the face used to draw it.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       graphics.Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
	Face       font.Face
}

// TextMeasurer shapes and measures text for layout. It stands in for the
// external text engine.
type TextMeasurer interface {
	// LayoutText measures text, wrapping at maxWidth when maxWidth > 0.
	LayoutText(text string, style TextStyle, maxWidth float64) *TextLayout
}

// BasicMeasurer measures text with the fixed-width basicfont face, scaled
// linearly to the requested font size.
type BasicMeasurer struct {
	face font.Face
}

// NewBasicMeasurer returns a measurer backed by basicfont.Face7x13.
func NewBasicMeasurer() *BasicMeasurer {
	return &BasicMeasurer{face: basicfont.Face7x13}
}

func (m *BasicMeasurer) scale(style TextStyle) float64 {
	size := style.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	return size / float64(m.face.Metrics().Height.Ceil())
}

func (m *BasicMeasurer) width(s string, scale float64) float64 {
	return fixedToFloat(font.MeasureString(m.face, s)) * scale
}

// LayoutText implements TextMeasurer.
func (m *BasicMeasurer) LayoutText(text string, style TextStyle, maxWidth float64) *TextLayout {
	if style.FontSize <= 0 {
		style.FontSize = DefaultFontSize
	}
	scale := m.scale(style)
	metrics := m.face.Metrics()
	layout := &TextLayout{
		Text:       text,
		Style:      style,
		Ascent:     fixedToFloat(metrics.Ascent) * scale,
		Descent:    fixedToFloat(metrics.Descent) * scale,
		LineHeight: fixedToFloat(metrics.Height) * scale,
		Face:       m.face,
	}

	for _, paragraph := range strings.Split(text, "\n") {
		layout.Lines = append(layout.Lines, m.wrap(paragraph, scale, maxWidth)...)
	}

	var width float64
	for _, line := range layout.Lines {
		width = math.Max(width, line.Width)
	}
	layout.Size = graphics.Size{
		Width:  math.Ceil(width),
		Height: math.Ceil(layout.LineHeight * float64(len(layout.Lines))),
	}
	return layout
}

// wrap breaks a paragraph into lines at word boundaries. Words wider than
// maxWidth are kept on their own line.
func (m *BasicMeasurer) wrap(paragraph string, scale, maxWidth float64) []TextLine {
	if maxWidth <= 0 {
		return []TextLine{{Text: paragraph, Width: m.width(paragraph, scale)}}
	}
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []TextLine{{Text: ""}}
	}
	var lines []TextLine
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.width(candidate, scale) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, TextLine{Text: current, Width: m.width(current, scale)})
		current = word
	}
	return append(lines, TextLine{Text: current, Width: m.width(current, scale)})
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
