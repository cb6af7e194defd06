// Package dataset reads the two-column sample data a regression run fits
// against, and helps render an evolved expression back out as a curve.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Dataset holds the parsed (x, f(x)) sample points a GA run scores
// candidates against.
type Dataset struct {
	X  []float64
	FX []float64
}

// Load reads a two-column dataset from path. Files named *.txt are parsed
// as tab-separated; files named *.csv are parsed as comma-separated. Any
// other extension is rejected. Blank lines are skipped; every other line
// must split into exactly two numeric fields, and the file must contain at
// least one such line.
func Load(path string) (Dataset, error) {
	separator, err := separatorFor(path)
	if err != nil {
		return Dataset{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer file.Close()

	var ds Dataset
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, separator, 2)
		if len(fields) != 2 {
			return Dataset{}, fmt.Errorf("dataset: %s:%d: expected 2 fields separated by %q, got %q", path, lineNo, separator, line)
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return Dataset{}, fmt.Errorf("dataset: %s:%d: invalid x value: %w", path, lineNo, err)
		}
		fx, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return Dataset{}, fmt.Errorf("dataset: %s:%d: invalid f(x) value: %w", path, lineNo, err)
		}

		ds.X = append(ds.X, x)
		ds.FX = append(ds.FX, fx)
	}
	if err := scanner.Err(); err != nil {
		return Dataset{}, fmt.Errorf("dataset: reading %s: %w", path, err)
	}

	if len(ds.X) == 0 {
		return Dataset{}, fmt.Errorf("dataset: no data points were read from %s", path)
	}
	if len(ds.X) != len(ds.FX) {
		return Dataset{}, fmt.Errorf("dataset: %s: not every x value has a corresponding f(x) value", path)
	}

	return ds, nil
}

// separatorFor picks the field separator implied by path's extension.
func separatorFor(path string) (string, error) {
	switch filepath.Ext(path) {
	case ".txt":
		return "\t", nil
	case ".csv":
		return ",", nil
	default:
		return "", fmt.Errorf("dataset: %s: only .txt and .csv files are supported", path)
	}
}

// Point is one sample of an evaluated curve.
type Point struct {
	X, FX float64
}

// DrawFunction samples numPoints evenly spaced points in [lbound, ubound) and
// evaluates evalFn (typically ga.Decode bound to a chromosome) at each,
// for plotting or textual reporting of an evolved expression.
func DrawFunction(evalFn func(x []float64) []float64, lbound, ubound float64, numPoints int) []Point {
	if lbound >= ubound {
		panic("dataset: lbound must be less than ubound")
	}
	if numPoints <= 0 {
		panic("dataset: numPoints must be positive")
	}

	increment := (ubound - lbound) / float64(numPoints)
	x := make([]float64, numPoints)
	for i := range x {
		x[i] = lbound + float64(i)*increment
	}

	fx := evalFn(x)

	points := make([]Point, numPoints)
	for i := range points {
		points[i] = Point{X: x[i], FX: fx[i]}
	}
	return points
}

// AxisMinMax returns the [min, max] span of values, padded on each side by
// pad times the span's length. Useful for picking chart axis bounds.
func AxisMinMax(values []float64, pad float64) (min, max float64) {
	if len(values) == 0 {
		panic("dataset: values must not be empty")
	}

	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	return min - pad*span, max + pad*span
}
