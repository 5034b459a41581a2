package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/midbel/graph"
	"github.com/midbel/graph/internal/server"
	"github.com/midbel/graph/source"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:      "serve",
	Usage:     "serve an interactive chart over HTTP",
	ArgsUsage: "[file.csv]",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "addr",
			Usage: "listening address",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "sqlite database holding candles",
		},
		&cli.StringFlag{
			Name:  "market",
			Usage: "market of the candles to chart",
		},
		&cli.TimestampFlag{
			Name:   "from",
			Layout: time.DateOnly,
			Usage:  "first day of candles to chart",
		},
		&cli.TimestampFlag{
			Name:   "to",
			Layout: time.DateOnly,
			Usage:  "last day of candles to chart",
		},
	}, columnFlags...),
	Action: runServe,
}

func runServe(c *cli.Context) error {
	cfg := applyFlags(c, settings)
	if addr := c.String("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	var (
		samples []graph.Sample
		dom     domain
		err     error
	)
	switch {
	case c.String("db") != "":
		samples, err = readStore(c)
		dom = domain{
			X:          c.String("xdom"),
			Y:          c.String("ydom"),
			XKind:      graph.KindInstant,
			YKind:      graph.KindReal,
			TimeFormat: cfg.TimeInput,
		}
	case c.NArg() == 1:
		var cols source.Columns
		if cols, dom, err = inputSpec(c, cfg); err == nil {
			samples, err = readSamples(c.Args().First(), cols)
		}
	default:
		err = errors.New("serve expects one CSV file or a sqlite database")
	}
	if err != nil {
		return err
	}
	ch, err := buildChart(cfg, samples, dom)
	if err != nil {
		return err
	}
	srv := server.New(ch)
	srv.Palette = cfg.Colors()
	srv.FontSize = cfg.FontSize
	return srv.ListenAndServe(c.Context, cfg.Server.Addr)
}

func readStore(c *cli.Context) ([]graph.Sample, error) {
	market := c.String("market")
	if market == "" {
		return nil, fmt.Errorf("market required with database")
	}
	db, err := source.Open(c.String("db"))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var from, to time.Time
	if t := c.Timestamp("from"); t != nil {
		from = *t
	}
	if t := c.Timestamp("to"); t != nil {
		to = t.Add(24*time.Hour - time.Millisecond)
	}
	samples, err := db.Samples(c.Context, market, from, to)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"market":  market,
		"samples": len(samples),
	}).Info("candles loaded")
	return samples, nil
}
