package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/internal/config"
	"github.com/gogpu/shade/palette"
	"github.com/gogpu/shade/swatch"
)

// app carries state shared by all commands once Before has run.
type app struct {
	cfg *config.Config
	out io.Writer
}

func newApp(stdout, stderr io.Writer) *cli.App {
	a := &app{out: stdout}
	return &cli.App{
		Name:      "shade",
		Usage:     "generate lightness-graded shades of a color",
		Version:   shade.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "shade.yaml",
				Usage:   "path to the YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides config)",
			},
		},
		Before: func(c *cli.Context) error {
			return a.setup(c, stderr)
		},
		Commands: []*cli.Command{
			a.generateCommand(),
			a.swatchCommand(),
			a.convertCommand(),
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintln(a.out, "shade", shade.Version)
					return err
				},
			},
		},
	}
}

// setup loads and validates configuration and installs the logger.
func (a *app) setup(c *cli.Context, stderr io.Writer) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	shade.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	a.cfg = cfg
	return nil
}

func shadeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "base",
			Aliases: []string{"b"},
			Usage:   "base color as #rrggbb",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of shades, at least 2",
		},
	}
}

// buildPalette builds the palette from flags, falling back to configuration.
func (a *app) buildPalette(c *cli.Context) (palette.Palette, error) {
	base, count := a.cfg.Base, a.cfg.Count
	if c.IsSet("base") {
		base = c.String("base")
	}
	if c.IsSet("count") {
		count = c.Int("count")
	}
	return palette.New(base, count)
}

func (a *app) generateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "print shades in text, json, yaml, css or gpl format",
		Flags: append(shadeFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: text, json, yaml, css, gpl",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "css-prefix",
				Usage: "custom property prefix for css and gpl output",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable terminal swatches in text output",
			},
		),
		Action: a.generate,
	}
}

func (a *app) generate(c *cli.Context) error {
	p, err := a.buildPalette(c)
	if err != nil {
		return err
	}

	name := a.cfg.Format
	if c.IsSet("format") {
		name = c.String("format")
	}
	f, err := palette.ParseFormat(name)
	if err != nil {
		return err
	}

	prefix := a.cfg.CSSPrefix
	if c.IsSet("css-prefix") {
		prefix = c.String("css-prefix")
	}
	output := a.cfg.Output
	if c.IsSet("output") {
		output = c.String("output")
	}

	toStdout := output == "" || output == "-"
	colored := toStdout && f == palette.FormatText && a.cfg.Color && !c.Bool("no-color") && !color.NoColor
	opts := []palette.EncodeOption{
		palette.WithCSSPrefix(prefix),
		palette.WithColor(colored),
		palette.WithColumns(a.cfg.Swatch.Columns),
	}

	if toStdout {
		return palette.Encode(a.out, p, f, opts...)
	}
	return writeFile(output, func(w io.Writer) error {
		return palette.Encode(w, p, f, opts...)
	})
}

func (a *app) swatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "swatch",
		Usage: "render shades to a PNG swatch sheet",
		Flags: append(shadeFlags(),
			&cli.StringFlag{
				Name:  "out",
				Usage: "PNG file to write",
			},
			&cli.IntFlag{
				Name:  "columns",
				Usage: "cells per row",
			},
			&cli.BoolFlag{
				Name:  "no-labels",
				Usage: "omit hex labels under each cell",
			},
		),
		Action: a.renderSwatch,
	}
}

func (a *app) renderSwatch(c *cli.Context) error {
	p, err := a.buildPalette(c)
	if err != nil {
		return err
	}

	sc := a.cfg.Swatch
	if c.IsSet("out") {
		sc.Output = c.String("out")
	}
	if c.IsSet("columns") {
		sc.Columns = c.Int("columns")
	}
	if c.Bool("no-labels") {
		sc.Labels = false
	}
	if sc.Output == "" {
		return errors.New("swatch: no output file")
	}

	err = swatch.Save(sc.Output, p.Shades,
		swatch.WithColumns(sc.Columns),
		swatch.WithCellSize(sc.CellWidth, sc.CellHeight),
		swatch.WithGap(sc.Gap),
		swatch.WithLabels(sc.Labels),
	)
	if err != nil {
		return err
	}
	shade.Logger().Info("swatch written", "path", sc.Output, "base", p.Base, "shades", p.Len())
	return nil
}

func (a *app) convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "show RGB and HSL for hex colors",
		ArgsUsage: "HEX...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("convert: at least one color is required")
			}
			for _, arg := range c.Args().Slice() {
				rgb, err := shade.ParseHex(arg)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(a.out, "%s  rgb(%d, %d, %d)  %s\n", rgb.Hex(), rgb.R, rgb.G, rgb.B, rgb.HSL())
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// writeFile creates path and hands it to fn, reporting close errors.
// A failed write removes the partial file.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if err := fn(f); err != nil {
		return err
	}
	shade.Logger().Info("palette written", "path", path)
	return nil
}
