package graph

// Tick is a labeled graduation of an axis.
type Tick struct {
	Offset float64
	Value  Value
	Label  string
}

// Segment holds the pixel positions of the ends of an axis line along the
// direction of the axis.
type Segment struct {
	From float64
	To   float64
}

func (s Segment) Len() float64 {
	if s.To < s.From {
		return s.From - s.To
	}
	return s.To - s.From
}

// LayoutResult is the outcome of Axis.Layout. Major holds the interior
// divisions in traversal order, Start and End the labels of the ends of the
// axis. Minor holds the positions of the unlabeled subdivisions.
type LayoutResult struct {
	Direction
	Start        Tick
	End          Tick
	Major        []Tick
	Minor        []float64
	Line         Segment
	Divisions    int
	Subdivisions int
	Spacing      float64
}

// Labels returns the ticks to label in traversal order, start and end
// included.
func (r LayoutResult) Labels() []Tick {
	all := make([]Tick, 0, len(r.Major)+2)
	all = append(all, r.Start)
	all = append(all, r.Major...)
	return append(all, r.End)
}
