package graph

import (
	"fmt"
	"math"
	"strings"

	"github.com/midbel/slices"
)

// Curve selects how consecutive samples of a serie are joined.
type Curve int

const (
	CurveLinear Curve = iota
	CurveStep
	CurveStepBefore
	CurveStepAfter
)

func ParseCurve(str string) (Curve, error) {
	switch strings.ToLower(str) {
	case "line", "linear", "":
		return CurveLinear, nil
	case "step":
		return CurveStep, nil
	case "step-before":
		return CurveStepBefore, nil
	case "step-after":
		return CurveStepAfter, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized curve", str)
	}
}

func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "line"
	case CurveStep:
		return "step"
	case CurveStepBefore:
		return "step-before"
	case CurveStepAfter:
		return "step-after"
	default:
		return "unknown"
	}
}

// Trace returns the vertices of the polylines drawing points. A point with
// a NaN coordinate ends the current polyline.
func (c Curve) Trace(points []Point) [][]Point {
	var (
		all [][]Point
		run []Point
	)
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			if len(run) > 0 {
				all = append(all, run)
			}
			run = nil
			continue
		}
		if len(run) > 0 {
			run = c.join(run, slices.Lst(run), p)
		}
		run = append(run, p)
	}
	if len(run) > 0 {
		all = append(all, run)
	}
	return all
}

func (c Curve) join(run []Point, ori, pos Point) []Point {
	switch c {
	case CurveStep:
		mid := ori.X + (pos.X-ori.X)/2
		run = append(run, NewPoint(mid, ori.Y), NewPoint(mid, pos.Y))
	case CurveStepAfter:
		run = append(run, NewPoint(pos.X, ori.Y))
	case CurveStepBefore:
		run = append(run, NewPoint(ori.X, pos.Y))
	default:
	}
	return run
}
