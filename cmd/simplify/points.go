package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"polysimplify/pkg/cfg"
	"polysimplify/pkg/geometry"
)

// readPoints parses one point per line. Blank lines and comment lines are
// skipped.
func readPoints(r io.Reader) (geometry.Polyline, error) {
	var line geometry.Polyline
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, cfg.CommentPrefix) {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return strings.ContainsRune(cfg.PointSeparators, r)
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 coordinates, got %d", lineNum, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: x: %w", lineNum, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: y: %w", lineNum, err)
		}
		line = append(line, geometry.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return line, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', cfg.OutputPrecision, 64)
}

func writePoints(w io.Writer, line geometry.Polyline) error {
	bw := bufio.NewWriter(w)
	for _, p := range line {
		if _, err := fmt.Fprintf(bw, "%s,%s\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeIndices(w io.Writer, indices []int) error {
	bw := bufio.NewWriter(w)
	for _, i := range indices {
		if _, err := fmt.Fprintln(bw, i); err != nil {
			return err
		}
	}
	return bw.Flush()
}
