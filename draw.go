package graph

// TickLength is the length in pixels of a major tick. Minor ticks are half
// as long.
const TickLength = 5.0

type Stroke int

const (
	StrokeAxis Stroke = iota
	StrokeMajor
	StrokeMinor
	StrokeGrid
	StrokeSerie
	StrokeCursor
)

func (s Stroke) String() string {
	switch s {
	case StrokeAxis:
		return "axis"
	case StrokeMajor:
		return "major"
	case StrokeMinor:
		return "minor"
	case StrokeGrid:
		return "grid"
	case StrokeSerie:
		return "serie"
	case StrokeCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// Anchor tells where a label sits relative to its position.
type Anchor int

const (
	// AnchorBelow centers the text horizontally under the position.
	AnchorBelow Anchor = iota
	// AnchorLeft ends the text at the position, centered vertically.
	AnchorLeft
)

// Sink is the rendering backend a chart is drawn onto.
type Sink interface {
	Line(from, to Point, kind Stroke)
	Text(at Point, str string, anchor Anchor)
}

// Draw sends the axes, the serie and the cursor of the chart to the sink.
func Draw(c *Chart, s Sink) {
	if c.XAxis() == nil || c.YAxis() == nil {
		return
	}
	var (
		orig   = c.Origin()
		plot   = c.Plot()
		xl, yl = c.Layouts()
	)
	drawHorizontal(s, xl, orig.Y, plot.Min.Y)
	drawVertical(s, yl, orig.X, plot.Max.X)
	drawSerie(s, c.Curve, c.Points())

	cur, ok := c.Cursor()
	if !ok {
		return
	}
	xs, ys, _ := c.Readout()
	s.Line(NewPoint(cur.X, plot.Min.Y), NewPoint(cur.X, plot.Max.Y), StrokeCursor)
	s.Line(NewPoint(plot.Min.X, cur.Y), NewPoint(plot.Max.X, cur.Y), StrokeCursor)
	s.Text(NewPoint(cur.X, orig.Y+TickLength), xs, AnchorBelow)
	s.Text(NewPoint(orig.X-TickLength, cur.Y), ys, AnchorLeft)
}

func drawHorizontal(s Sink, res LayoutResult, y, top float64) {
	s.Line(NewPoint(res.Line.From, y), NewPoint(res.Line.To, y), StrokeAxis)
	for _, t := range res.Major {
		s.Line(NewPoint(t.Offset, y), NewPoint(t.Offset, top), StrokeGrid)
		s.Line(NewPoint(t.Offset, y), NewPoint(t.Offset, y-TickLength), StrokeMajor)
	}
	for _, x := range res.Minor {
		s.Line(NewPoint(x, y), NewPoint(x, y-TickLength/2), StrokeMinor)
	}
	for _, t := range res.Labels() {
		s.Text(NewPoint(t.Offset, y+TickLength), t.Label, AnchorBelow)
	}
}

func drawVertical(s Sink, res LayoutResult, x, right float64) {
	s.Line(NewPoint(x, res.Line.From), NewPoint(x, res.Line.To), StrokeAxis)
	for _, t := range res.Major {
		s.Line(NewPoint(x, t.Offset), NewPoint(right, t.Offset), StrokeGrid)
		s.Line(NewPoint(x, t.Offset), NewPoint(x+TickLength, t.Offset), StrokeMajor)
	}
	for _, y := range res.Minor {
		s.Line(NewPoint(x, y), NewPoint(x+TickLength/2, y), StrokeMinor)
	}
	for _, t := range res.Labels() {
		s.Text(NewPoint(x-TickLength, t.Offset), t.Label, AnchorLeft)
	}
}

func drawSerie(s Sink, curve Curve, points []Point) {
	for _, line := range curve.Trace(points) {
		for i := 1; i < len(line); i++ {
			s.Line(line[i-1], line[i], StrokeSerie)
		}
	}
}
