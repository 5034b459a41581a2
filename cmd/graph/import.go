package main

import (
	"context"
	"fmt"
	"os"

	"github.com/midbel/graph/source"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var importCommand = &cli.Command{
	Name:      "import",
	Usage:     "load candles from CSV files into a sqlite database",
	ArgsUsage: "<file.csv...>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Usage:    "sqlite database holding candles",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "market",
			Usage:    "market of the imported candles",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "no-header",
			Usage: "input files have no header line",
		},
	},
	Action: runImport,
}

func runImport(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoInput
	}
	db, err := source.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer db.Close()

	for _, file := range c.Args().Slice() {
		err := importFile(c.Context, db, c.String("market"), file, !c.Bool("no-header"), settings.TimeInput)
		if err != nil {
			return err
		}
	}
	return nil
}

func importFile(ctx context.Context, db *source.Store, market, file string, header bool, timefmt string) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	candles, err := source.ReadCandles(r, header, timefmt)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := db.Save(ctx, market, candles); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	logrus.WithFields(logrus.Fields{
		"file":    file,
		"market":  market,
		"candles": len(candles),
	}).Info("candles imported")
	return nil
}
