package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/midbel/graph/internal/config"
	"github.com/midbel/graph/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	settings  config.Config
	logCloser io.Closer
)

func main() {
	app := cli.NewApp()
	app.Name = "graph"
	app.Usage = "draw line charts with self arranging axes"
	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "configuration file",
			EnvVars: []string{config.EnvPrefix + "_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "override the configured log level",
		},
	}
	app.Before = setup
	app.After = func(*cli.Context) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	}
	app.Commands = []*cli.Command{
		drawCommand,
		serveCommand,
		importCommand,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		logrus.WithError(err).Error("graph failed")
		cancel()
		os.Exit(1)
	}
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	closer, err := logging.Setup(cfg.Logging)
	if err != nil {
		return err
	}
	settings, logCloser = cfg, closer
	return nil
}
