package source

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/graph"
)

const candleFields = 6

// ReadCandles reads candles from CSV rows laid out as time, open, high,
// low, close and volume. The first row is skipped when header is set.
func ReadCandles(r io.Reader, header bool, timefmt string) ([]Candle, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.ReuseRecord = true
	if header {
		if _, err := rs.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
	}
	var candles []Candle
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		line, _ := rs.FieldPos(0)
		if len(row) < candleFields {
			return nil, &RowError{Line: line, Err: ErrColumn}
		}
		c, err := parseCandle(row, timefmt)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		candles = append(candles, c)
	}
	return candles, nil
}

func parseCandle(row []string, timefmt string) (Candle, error) {
	var c Candle
	when, err := ParseValue(row[0], graph.KindInstant, timefmt)
	if err != nil {
		return c, err
	}
	c.Time = when.Time()

	prices := []*float64{&c.Open, &c.High, &c.Low, &c.Close, &c.Volume}
	for i, ptr := range prices {
		*ptr, err = strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
		if err != nil {
			return c, err
		}
	}
	return c, nil
}
