package graph

import (
	"errors"
	"math"
	"time"
)

var (
	ErrKindMismatch = errors.New("values of different kinds")
	ErrEmptyRange   = errors.New("end not greater than start")
)

type Kind int

const (
	KindInteger Kind = iota
	KindReal
	KindInstant
)

func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindReal
}

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindInstant:
		return "instant"
	default:
		return "unknown"
	}
}

// Value is the logical quantity represented by an axis: an integer, a real
// number or an instant in time. The zero Value is Integer(0).
type Value struct {
	kind Kind
	i    int64
	f    float64
	t    time.Time
}

func Integer(i int64) Value {
	return Value{
		kind: KindInteger,
		i:    i,
	}
}

func Real(f float64) Value {
	return Value{
		kind: KindReal,
		f:    f,
	}
}

func Instant(t time.Time) Value {
	return Value{
		kind: KindInstant,
		t:    t,
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Int() int64 {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindReal:
		return int64(v.f)
	default:
		return v.t.UnixNano()
	}
}

// Float returns the numeric value. Instants are returned as nanoseconds
// since the Unix epoch.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInteger:
		return float64(v.i)
	case KindReal:
		return v.f
	default:
		return float64(v.t.UnixNano())
	}
}

func (v Value) Time() time.Time {
	if v.kind == KindInstant {
		return v.t
	}
	return time.Time{}
}

func (v Value) String() string {
	var f Formatter
	return f.Format(v)
}

func (v Value) finite() bool {
	if v.kind != KindReal {
		return true
	}
	return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
}

// Compare orders two values of the same kind. It returns -1, 0 or 1.
func Compare(a, b Value) (int, error) {
	if a.kind != b.kind {
		return 0, ErrKindMismatch
	}
	switch a.kind {
	case KindInteger:
		return compareBool(a.i < b.i, a.i > b.i), nil
	case KindReal:
		return compareBool(a.f < b.f, a.f > b.f), nil
	default:
		return compareBool(a.t.Before(b.t), a.t.After(b.t)), nil
	}
}

func compareBool(less, more bool) int {
	switch {
	case less:
		return -1
	case more:
		return 1
	default:
		return 0
	}
}

// compatible reports whether v can be placed on an axis holding values of
// kind k. Integer and real values mix freely.
func compatible(k Kind, v Value) bool {
	if k.Numeric() {
		return v.kind.Numeric()
	}
	return v.kind == k
}
