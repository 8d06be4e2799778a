package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cellux/spectroview/config"
	"github.com/cellux/spectroview/zoom"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Parse(
		cmd.String("log-level"),
		cmd.String("title"),
		cmd.String("filter"),
		cmd.String("blend"),
	)
	if err != nil {
		return err
	}
	InitLogger(cfg.LogLevel)
	raster := zoom.NewGradient(config.WindowSize)
	app := CreateApp(cfg, raster)
	return WithGL(cfg.Title, config.WindowSize, app)
}

func main() {
	cmd := &cli.Command{
		Name:  "spectroview",
		Usage: "drag to zoom into a region, Ctrl+0 to zoom out, Escape to quit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("SPECTROVIEW_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "title",
				Value:   config.DefaultTitle,
				Usage:   "window title",
				Sources: cli.EnvVars("SPECTROVIEW_TITLE"),
			},
			&cli.StringFlag{
				Name:    "filter",
				Value:   "nearest",
				Usage:   "texture sampling when zoomed: nearest or linear",
				Sources: cli.EnvVars("SPECTROVIEW_FILTER"),
			},
			&cli.StringFlag{
				Name:    "blend",
				Value:   "alpha",
				Usage:   "selection highlight blending: alpha or add",
				Sources: cli.EnvVars("SPECTROVIEW_BLEND"),
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%v\n", err)
	}
}
