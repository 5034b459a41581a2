package source

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/midbel/graph"
	"github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS candles (
	market TEXT NOT NULL,
	ts     INTEGER NOT NULL,
	open   REAL NOT NULL,
	high   REAL NOT NULL,
	low    REAL NOT NULL,
	close  REAL NOT NULL,
	volume REAL NOT NULL,
	PRIMARY KEY (market, ts)
)`

// Candle holds the prices of a market over one interval.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Store keeps market candles in a SQLite database. Timestamps are stored
// as milliseconds since the Unix epoch.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	logrus.WithField("path", path).Debug("candle store opened")
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts candles of market, replacing those sharing a timestamp.
func (s *Store) Save(ctx context.Context, market string, candles []Candle) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO candles (market, ts, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("sqlite prepare: %w", err)
	}
	defer stmt.Close()

	for _, c := range candles {
		_, err := stmt.ExecContext(ctx, market, c.Time.UnixMilli(), c.Open, c.High, c.Low, c.Close, c.Volume)
		if err != nil {
			return fmt.Errorf("sqlite insert candle: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite commit: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"market":  market,
		"candles": len(candles),
	}).Debug("candles saved")
	return nil
}

// Samples returns the close prices of market between from and to
// included, ordered by time. A zero from or to leaves that side unbounded.
func (s *Store) Samples(ctx context.Context, market string, from, to time.Time) ([]graph.Sample, error) {
	var (
		lo int64 = math.MinInt64
		hi int64 = math.MaxInt64
	)
	if !from.IsZero() {
		lo = from.UnixMilli()
	}
	if !to.IsZero() {
		hi = to.UnixMilli()
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT ts, close
		FROM candles
		WHERE market = ? AND ts >= ? AND ts <= ?
		ORDER BY ts ASC
	`, market, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("sqlite query candles: %w", err)
	}
	defer rows.Close()

	var samples []graph.Sample
	for rows.Next() {
		var (
			ts    int64
			price float64
		)
		if err := rows.Scan(&ts, &price); err != nil {
			return nil, fmt.Errorf("sqlite scan candles: %w", err)
		}
		samples = append(samples, graph.TimeSample(time.UnixMilli(ts).UTC(), price))
	}
	return samples, rows.Err()
}

func (s *Store) Markets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT market FROM candles ORDER BY market`)
	if err != nil {
		return nil, fmt.Errorf("sqlite query markets: %w", err)
	}
	defer rows.Close()

	var markets []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("sqlite scan markets: %w", err)
		}
		markets = append(markets, m)
	}
	return markets, rows.Err()
}
