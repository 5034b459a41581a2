package graph

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

const (
	axisColor   = "black"
	cursorColor = "gray"
)

// SVGSink collects the drawing of a chart into a SVG document.
type SVGSink struct {
	Width    float64
	Height   float64
	FontSize float64
	Palette

	root svg.Group
}

func NewSVGSink(width, height float64) *SVGSink {
	s := SVGSink{
		Width:    width,
		Height:   height,
		FontSize: FontSize,
		Palette:  Category10,
	}
	s.root.Class = append(s.root.Class, "graph")
	return &s
}

func (s *SVGSink) Line(from, to Point, kind Stroke) {
	li := svg.NewLine(svg.NewPos(from.X, from.Y), svg.NewPos(to.X, to.Y))
	li.Stroke = s.stroke(kind)
	s.root.Append(li.AsElement())
}

func (s *SVGSink) Text(at Point, str string, anchor Anchor) {
	txt := svg.NewText(str)
	txt.Pos = svg.NewPos(at.X, at.Y)
	txt.Font = svg.NewFont(s.FontSize)
	switch anchor {
	case AnchorLeft:
		txt.Anchor = "end"
		txt.Baseline = "middle"
	default:
		txt.Anchor = "middle"
		txt.Baseline = "hanging"
	}
	s.root.Append(txt.AsElement())
}

func (s *SVGSink) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(s.Width, s.Height))
	el.OmitProlog = true
	el.Append(s.root.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (s *SVGSink) stroke(kind Stroke) svg.Stroke {
	var sk svg.Stroke
	switch kind {
	case StrokeGrid:
		sk = svg.NewStroke(axisColor, 1)
		sk.Opacity = 0.1
	case StrokeMinor:
		sk = svg.NewStroke(axisColor, 1)
		sk.Opacity = 0.5
	case StrokeSerie:
		sk = svg.NewStroke(s.Palette.At(0), 2)
	case StrokeCursor:
		sk = svg.NewStroke(cursorColor, 1)
		sk.DashArray(5)
	default:
		sk = svg.NewStroke(axisColor, 1)
	}
	return sk
}

// RenderSVG draws the chart as a SVG document onto w.
func RenderSVG(w io.Writer, c *Chart) error {
	sink := NewSVGSink(c.Width, c.Height)
	Draw(c, sink)
	return sink.Render(w)
}
