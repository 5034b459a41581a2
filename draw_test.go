package graph

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	From Point
	To   Point
	Kind Stroke
}

type text struct {
	At     Point
	Str    string
	Anchor Anchor
}

type recorder struct {
	lines []line
	texts []text
}

func (r *recorder) Line(from, to Point, kind Stroke) {
	r.lines = append(r.lines, line{From: from, To: to, Kind: kind})
}

func (r *recorder) Text(at Point, str string, anchor Anchor) {
	r.texts = append(r.texts, text{At: at, Str: str, Anchor: anchor})
}

func (r *recorder) count(kind Stroke) int {
	var n int
	for _, li := range r.lines {
		if li.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) labels(anchor Anchor) []string {
	var all []string
	for _, tx := range r.texts {
		if tx.Anchor == anchor {
			all = append(all, tx.Str)
		}
	}
	return all
}

func TestDrawChart(t *testing.T) {
	t.Parallel()
	c := newTestChart(t)
	c.X.Subdivisions = 2
	require.NoError(t, c.SetDomain(Real(0), Real(100), Real(0), Real(10)))
	require.NoError(t, c.SetSeries([]Sample{
		NumberSample(0, 0),
		NumberSample(50, 5),
		NumberSample(100, math.NaN()),
		NumberSample(100, 10),
	}))

	var rec recorder
	Draw(c, &rec)

	xl, yl := c.Layouts()
	assert.Equal(t, 2, rec.count(StrokeAxis))
	assert.Equal(t, len(xl.Major)+len(yl.Major), rec.count(StrokeMajor))
	assert.Equal(t, len(xl.Major)+len(yl.Major), rec.count(StrokeGrid))
	assert.Equal(t, len(xl.Minor)+len(yl.Minor), rec.count(StrokeMinor))
	assert.Equal(t, 1, rec.count(StrokeSerie))
	assert.Zero(t, rec.count(StrokeCursor))

	assert.Equal(t, []string{"0", "10", "20", "30", "40", "50", "60", "70", "80", "90", "100"}, rec.labels(AnchorBelow))
	assert.Equal(t, []string{"0", "2", "4", "6", "8", "10"}, rec.labels(AnchorLeft))

	for _, li := range rec.lines {
		if li.Kind != StrokeMajor || li.From.Y != c.Origin().Y {
			continue
		}
		assert.Equal(t, li.From.X, li.To.X)
		assert.Equal(t, c.Origin().Y-TickLength, li.To.Y)
	}
}

func TestDrawCursor(t *testing.T) {
	t.Parallel()
	c := newTestChart(t)
	require.True(t, c.PointerMoved(360, 140))

	var rec recorder
	Draw(c, &rec)
	assert.Equal(t, 2, rec.count(StrokeCursor))
	require.NotEmpty(t, rec.texts)

	var (
		xs = rec.texts[len(rec.texts)-2]
		ys = rec.texts[len(rec.texts)-1]
	)
	assert.Equal(t, "50", xs.Str)
	assert.Equal(t, NewPoint(360, 268+TickLength), xs.At)
	assert.Equal(t, "5", ys.Str)
	assert.Equal(t, NewPoint(32-TickLength, 140), ys.At)
}

func TestDrawWithoutDomain(t *testing.T) {
	t.Parallel()
	var rec recorder
	Draw(NewChart(DefaultSettings(), nil), &rec)
	assert.Empty(t, rec.lines)
	assert.Empty(t, rec.texts)
}

func TestRenderSVG(t *testing.T) {
	t.Parallel()
	c := newTestChart(t)
	require.NoError(t, c.SetSeries([]Sample{NumberSample(0, 0), NumberSample(100, 10)}))

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, c))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<line")
}

func TestPalette(t *testing.T) {
	t.Parallel()
	assert.Len(t, Category10, 10)
	assert.Equal(t, "#1f77b4", Category10.At(0))
	assert.Equal(t, "#1f77b4", Category10.At(10))
	assert.Equal(t, "#4e79a7", Tableau10.At(0))
	var empty Palette
	assert.Equal(t, Category10.At(3), empty.At(3))
}
