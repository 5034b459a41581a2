package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/graph"
	"github.com/midbel/graph/internal/config"
	"github.com/midbel/graph/source"
)

// domain describes how the ranges of the axes are obtained: parsed from
// the command line when given, computed from the samples otherwise.
type domain struct {
	X          string
	Y          string
	XKind      graph.Kind
	YKind      graph.Kind
	TimeFormat string
}

func (d domain) resolve(samples []graph.Sample) (x0, x1, y0, y1 graph.Value, err error) {
	if d.X == "" || d.Y == "" {
		x0, x1, y0, y1, err = graph.Extent(samples)
		if err != nil {
			return
		}
	}
	if d.X != "" {
		if x0, x1, err = source.ParseRange(d.X, d.XKind, d.TimeFormat); err != nil {
			err = fmt.Errorf("x domain: %w", err)
			return
		}
	}
	if d.Y != "" {
		if y0, y1, err = source.ParseRange(d.Y, d.YKind, d.TimeFormat); err != nil {
			err = fmt.Errorf("y domain: %w", err)
			return
		}
	}
	x0, x1 = widen(x0, x1)
	y0, y1 = widen(y0, y1)
	return
}

// widen enlarges a range computed from samples sharing the same value.
func widen(start, end graph.Value) (graph.Value, graph.Value) {
	if c, err := graph.Compare(start, end); err != nil || c != 0 {
		return start, end
	}
	switch start.Kind() {
	case graph.KindInteger:
		return graph.Integer(start.Int() - 1), graph.Integer(end.Int() + 1)
	case graph.KindReal:
		return graph.Real(start.Float() - 1), graph.Real(end.Float() + 1)
	case graph.KindInstant:
		return graph.Instant(start.Time().Add(-12 * time.Hour)), graph.Instant(end.Time().Add(12 * time.Hour))
	default:
		return start, end
	}
}

func buildChart(cfg config.Config, samples []graph.Sample, dom domain) (*graph.Chart, error) {
	x0, x1, y0, y1, err := dom.resolve(samples)
	if err != nil {
		return nil, err
	}
	c := graph.NewChart(cfg.Settings(), cfg.Measurer())
	if err := c.SetDomain(x0, x1, y0, y1); err != nil {
		return nil, err
	}
	if err := c.SetSeries(samples); err != nil {
		return nil, err
	}
	c.Resize(cfg.Width, cfg.Height)
	return c, nil
}

func readSamples(file string, cols source.Columns) ([]graph.Sample, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	samples, err := source.ReadCSV(r, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return samples, nil
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
