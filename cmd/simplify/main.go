package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"polysimplify/pkg/cfg"
	"polysimplify/pkg/geometry"
	"polysimplify/pkg/simplify"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("simplify", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: simplify [flags] [points-file]\n")
		flags.PrintDefaults()
	}
	tolerance := flags.Float64("tolerance", cfg.DefaultTolerance, "maximum distance of a dropped point from the simplified line")
	indices := flags.Bool("indices", false, "print the positions of the retained points instead of the points")
	verbose := flags.Bool("v", false, "log debug output to stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		simplify.SetLogger(logger)
		defer simplify.SetLogger(nil)
	}

	in := stdin
	if flags.NArg() > 0 {
		data, err := os.ReadFile(flags.Arg(0))
		if err != nil {
			return fmt.Errorf("file read error: %w", err)
		}
		in = bytes.NewReader(data)
	}

	line, err := readPoints(in)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	if err := simplify.Validate(line, *tolerance); err != nil {
		return fmt.Errorf("simplify error: %w", err)
	}

	kept := simplify.Indices(line, *tolerance)
	simplified := make(geometry.Polyline, len(kept))
	for k, i := range kept {
		simplified[k] = line[i]
	}
	logLine(logger, "input", line)
	logLine(logger, "output", simplified)

	if *indices {
		err = writeIndices(stdout, kept)
	} else {
		err = writePoints(stdout, simplified)
	}
	if err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func logLine(logger *slog.Logger, msg string, line geometry.Polyline) {
	bounds := line.Bounds()
	logger.LogAttrs(context.Background(), slog.LevelDebug, msg,
		slog.Int("points", len(line)),
		slog.Float64("length", line.Length()),
		slog.Float64("width", bounds.Width()),
		slog.Float64("height", bounds.Height()))
}
