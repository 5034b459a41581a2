package graph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	DefaultPrecision  = 2
	DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"
)

// Formatter turns values into label text. Numbers are rounded to Precision
// decimals (DefaultPrecision when zero) and stripped of trailing zeros.
// Instants are printed with TimeFormat, a strftime like pattern.
type Formatter struct {
	Precision  int
	TimeFormat string
}

func (f Formatter) Format(v Value) string {
	switch v.Kind() {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return formatNumber(v.f, f.precision())
	default:
		return v.t.Format(f.layout())
	}
}

func (f Formatter) precision() int {
	if f.Precision <= 0 {
		return DefaultPrecision
	}
	return f.Precision
}

func (f Formatter) layout() string {
	pattern := f.TimeFormat
	if pattern == "" {
		pattern = DefaultTimeFormat
	}
	layout, err := ParseTimeFormat(pattern)
	if err != nil {
		layout, _ = ParseTimeFormat(DefaultTimeFormat)
	}
	return layout
}

func formatNumber(f float64, prec int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return decimal.NewFromFloat(f).Round(int32(prec)).String()
}

const percent = '%'

var specifiers = map[rune]string{
	'D': "01/02/06",
	'Y': "2006",
	'y': "06",
	'm': "01",
	'B': "January",
	'b': "Jan",
	'h': "Jan",
	'd': "02",
	'e': "_2",
	'j': "002",
	'A': "Monday",
	'a': "Mon",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'L': "000",
	'p': "PM",
	'T': "15:04:05",
	'F': "2006-01-02",
	'z': "-07:00",
	'Z': "MST",
	'R': "15:04",
	'%': "%",
}

// ParseTimeFormat translates a strftime like pattern into a layout
// understood by the time package.
func ParseTimeFormat(str string) (string, error) {
	var (
		r = strings.NewReader(str)
		w strings.Builder
	)
	for r.Len() > 0 {
		x, _, _ := r.ReadRune()
		if x == utf8.RuneError {
			return "", fmt.Errorf("invalid character found in format string")
		}
		if x != percent {
			w.WriteRune(x)
			continue
		}
		x, _, err := r.ReadRune()
		if err != nil {
			return "", fmt.Errorf("missing specifier at end of format string")
		}
		str, ok := specifiers[x]
		if !ok {
			return "", fmt.Errorf("invalid specifier found %c", x)
		}
		w.WriteString(str)
	}
	return w.String(), nil
}

// ParseTime parses str with a strftime like pattern.
func ParseTime(pattern, str string) (time.Time, error) {
	layout, err := ParseTimeFormat(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(layout, str)
}
