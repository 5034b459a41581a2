// Package source produces the ordered samples plotted by a chart.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/graph"
	"github.com/midbel/slices"
)

const DefaultTimeFormat = "%Y-%m-%d"

var (
	ErrColumn = errors.New("column index out of range")
	ErrRange  = errors.New("invalid number of values given for domain")
)

type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Columns selects and types the two columns of a CSV file holding the x
// and y values of the samples.
type Columns struct {
	X          int
	Y          int
	XKind      graph.Kind
	YKind      graph.Kind
	TimeFormat string
	Comma      rune
	Header     bool
}

func (c Columns) valid(row []string) bool {
	return c.X >= 0 && c.X < len(row) && c.Y >= 0 && c.Y < len(row)
}

func ReadCSV(r io.Reader, cols Columns) ([]graph.Sample, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.ReuseRecord = true
	if cols.Comma != 0 {
		rs.Comma = cols.Comma
	}
	if cols.Header {
		if _, err := rs.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
	}
	var samples []graph.Sample
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		line, _ := rs.FieldPos(0)
		if !cols.valid(row) {
			return nil, &RowError{Line: line, Err: ErrColumn}
		}
		var s graph.Sample
		if s.X, err = ParseValue(row[cols.X], cols.XKind, cols.TimeFormat); err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		if s.Y, err = ParseValue(row[cols.Y], cols.YKind, cols.TimeFormat); err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// ParseValue parses str as a value of the given kind. Instants are parsed
// with a strftime like pattern, DefaultTimeFormat when empty.
func ParseValue(str string, kind graph.Kind, timefmt string) (graph.Value, error) {
	str = strings.TrimSpace(str)
	switch kind {
	case graph.KindInteger:
		i, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return graph.Value{}, err
		}
		return graph.Integer(i), nil
	case graph.KindReal:
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return graph.Value{}, err
		}
		return graph.Real(f), nil
	case graph.KindInstant:
		if timefmt == "" {
			timefmt = DefaultTimeFormat
		}
		t, err := graph.ParseTime(timefmt, str)
		if err != nil {
			return graph.Value{}, err
		}
		return graph.Instant(t), nil
	default:
		return graph.Value{}, fmt.Errorf("%s: unsupported kind", kind)
	}
}

// ParseKind recognizes the names of value kinds accepted on the command
// line and in configuration files.
func ParseKind(str string) (graph.Kind, error) {
	switch strings.ToLower(str) {
	case "number", "real", "float", "":
		return graph.KindReal, nil
	case "integer", "int":
		return graph.KindInteger, nil
	case "time", "instant", "date":
		return graph.KindInstant, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized value kind", str)
	}
}

// ParseRange parses a domain written as "start:end". Values containing
// colons, such as times of day, are written "start..end".
func ParseRange(str string, kind graph.Kind, timefmt string) (graph.Value, graph.Value, error) {
	sep := ":"
	if strings.Contains(str, "..") {
		sep = ".."
	}
	vs := strings.Split(str, sep)
	if len(vs) != 2 {
		return graph.Value{}, graph.Value{}, ErrRange
	}
	fst, err := ParseValue(slices.Fst(vs), kind, timefmt)
	if err != nil {
		return fst, fst, err
	}
	lst, err := ParseValue(slices.Lst(vs), kind, timefmt)
	if err != nil {
		return fst, lst, err
	}
	return fst, lst, nil
}
