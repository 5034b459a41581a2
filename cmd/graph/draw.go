package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/midbel/graph"
	"github.com/midbel/graph/internal/config"
	"github.com/midbel/graph/source"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var errNoInput = errors.New("no input files given")

var columnFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "xcol",
		Value: 0,
		Usage: "index of x column",
	},
	&cli.IntFlag{
		Name:  "ycol",
		Value: 1,
		Usage: "index of y column",
	},
	&cli.StringFlag{
		Name:  "xdata",
		Value: "number",
		Usage: "x data type (integer, number, time)",
	},
	&cli.StringFlag{
		Name:  "ydata",
		Value: "number",
		Usage: "y data type (integer, number, time)",
	},
	&cli.StringFlag{
		Name:  "xdom",
		Usage: "domain for x values",
	},
	&cli.StringFlag{
		Name:  "ydom",
		Usage: "domain for y values",
	},
	&cli.BoolFlag{
		Name:  "no-header",
		Usage: "input files have no header line",
	},
	&cli.StringFlag{
		Name:  "curve",
		Usage: "curve joining samples (line, step, step-before, step-after)",
	},
	&cli.Float64Flag{
		Name:  "width",
		Usage: "chart width",
	},
	&cli.Float64Flag{
		Name:  "height",
		Usage: "chart height",
	},
}

var drawCommand = &cli.Command{
	Name:      "draw",
	Usage:     "render CSV files as SVG line charts",
	ArgsUsage: "<file.csv...>",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Value: ".",
			Usage: "output directory of the charts",
		},
		&cli.StringFlag{
			Name:  "cursor",
			Usage: "pointer position x,y of the cursor to draw",
		},
	}, columnFlags...),
	Action: runDraw,
}

func runDraw(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoInput
	}
	cfg := applyFlags(c, settings)
	if err := cfg.Validate(); err != nil {
		return err
	}
	cols, dom, err := inputSpec(c, cfg)
	if err != nil {
		return err
	}
	var (
		cursor *graph.Point
		dir    = c.String("dir")
	)
	if str := c.String("cursor"); str != "" {
		var pt graph.Point
		if _, err := fmt.Sscanf(str, "%g,%g", &pt.X, &pt.Y); err != nil {
			return fmt.Errorf("cursor %q: %w", str, err)
		}
		cursor = &pt
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	grp, ctx := errgroup.WithContext(c.Context)
	grp.SetLimit(runtime.NumCPU())
	for _, file := range c.Args().Slice() {
		file := file
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := filepath.Join(dir, getIdent(file)+".svg")
			return drawFile(cfg, file, out, cols, dom, cursor)
		})
	}
	return grp.Wait()
}

func drawFile(cfg config.Config, file, out string, cols source.Columns, dom domain, cursor *graph.Point) error {
	samples, err := readSamples(file, cols)
	if err != nil {
		return err
	}
	ch, err := buildChart(cfg, samples, dom)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if cursor != nil && !ch.PointerMoved(cursor.X, cursor.Y) {
		logrus.WithField("file", file).Warn("cursor position outside of plot area")
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := render(w, cfg, ch); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	xl, yl := ch.Layouts()
	logrus.WithFields(logrus.Fields{
		"file":    file,
		"out":     out,
		"samples": len(samples),
		"xdiv":    xl.Divisions,
		"ydiv":    yl.Divisions,
	}).Info("chart rendered")
	return nil
}

func render(w io.Writer, cfg config.Config, ch *graph.Chart) error {
	bw := bufio.NewWriter(w)
	sink := graph.NewSVGSink(ch.Width, ch.Height)
	sink.FontSize = cfg.FontSize
	sink.Palette = cfg.Colors()
	graph.Draw(ch, sink)
	if err := sink.Render(bw); err != nil {
		return err
	}
	return bw.Flush()
}

func applyFlags(c *cli.Context, cfg config.Config) config.Config {
	if c.IsSet("width") {
		cfg.Width = c.Float64("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Float64("height")
	}
	if c.IsSet("curve") {
		cfg.Curve = c.String("curve")
	}
	return cfg
}

func inputSpec(c *cli.Context, cfg config.Config) (source.Columns, domain, error) {
	var (
		cols source.Columns
		dom  domain
		err  error
	)
	if cols.XKind, err = source.ParseKind(c.String("xdata")); err != nil {
		return cols, dom, err
	}
	if cols.YKind, err = source.ParseKind(c.String("ydata")); err != nil {
		return cols, dom, err
	}
	cols.X = c.Int("xcol")
	cols.Y = c.Int("ycol")
	cols.Header = !c.Bool("no-header")
	cols.TimeFormat = cfg.TimeInput

	dom = domain{
		X:          c.String("xdom"),
		Y:          c.String("ydom"),
		XKind:      cols.XKind,
		YKind:      cols.YKind,
		TimeFormat: cfg.TimeInput,
	}
	return cols, dom, nil
}
