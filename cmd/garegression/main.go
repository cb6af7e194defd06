// Command garegression fits a mixed-encoded symbolic expression to a
// two-column dataset using a genetic algorithm.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/aram/garegression/ga"
	"github.com/aram/garegression/internal/dataset"
)

func main() {
	var (
		dataPath   = pflag.StringP("data", "d", "", "Path to the .txt (tab-separated) or .csv (comma-separated) dataset to fit.")
		configPath = pflag.StringP("config", "c", "", "Path to a YAML run configuration file. Defaults are used for anything not set.")
		metric     = pflag.StringP("metric", "m", "ls", "Error metric to optimize: ls, lad, rmse, or minmax.")
		preset     = pflag.StringP("preset-form", "p", "", "Fix the function/operator pattern, e.g. \"2*4-1\". Leaves only coefficients free to evolve.")
		draw       = pflag.Int("draw", 0, "Print the best expression sampled at this many evenly spaced points over the data's x range.")
		verbose    = pflag.BoolP("verbose", "v", false, "Enable debug logging of generation progress.")
		help       = pflag.Bool("help", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: garegression --data <file> [--config <file>] [--metric ls|lad|rmse|minmax]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	logger := logrus.StandardLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "garegression: --data is required")
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(*dataPath, *configPath, *metric, *preset, *draw, logger); err != nil {
		logger.WithError(err).Error("garegression: run failed")
		os.Exit(1)
	}
}

func run(dataPath, configPath, metric, presetForm string, drawPoints int, logger *logrus.Logger) error {
	ds, err := dataset.Load(dataPath)
	if err != nil {
		return err
	}

	cfg := ga.DefaultRunConfig()
	if configPath != "" {
		cfg, err = loadRunConfig(configPath)
		if err != nil {
			return err
		}
	}

	if presetForm != "" {
		form, err := ga.ParsePresetForm(presetForm)
		if err != nil {
			return fmt.Errorf("garegression: --preset-form: %w", err)
		}
		cfg.UsePresetForm = true
		cfg.PresetForm = form
		cfg.ChromosomeLen = (len(form) + 1) / 2
	}

	errorMetric, err := parseErrorMetric(metric)
	if err != nil {
		return err
	}

	fitnessFunc, err := ga.NewFitnessFunc(ds.X, ds.FX, errorMetric)
	if err != nil {
		return fmt.Errorf("garegression: building fitness function: %w", err)
	}

	algorithm, err := ga.New(cfg, fitnessFunc, ga.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("garegression: invalid run configuration: %w", err)
	}

	if err := algorithm.Run(); err != nil {
		return fmt.Errorf("garegression: %w", err)
	}

	best := algorithm.Best()
	infix := ga.ChromosomeToInfix(best.Chromosome)

	fmt.Printf("best fitness: %g\n", best.Fitness[0])
	fmt.Printf("best expression: %s\n", ga.Print(infix))

	if drawPoints > 0 {
		lbound, ubound := dataset.AxisMinMax(ds.X, 0)
		if lbound == ubound {
			return fmt.Errorf("garegression: cannot draw: every x value in %s is %g", dataPath, lbound)
		}
		points := dataset.DrawFunction(func(x []float64) []float64 {
			return ga.Decode(best.Chromosome, x)
		}, lbound, ubound, drawPoints)
		for _, p := range points {
			fmt.Printf("%g\t%g\n", p.X, p.FX)
		}
	}

	return nil
}

// loadRunConfig reads a YAML run configuration file, starting from
// ga.DefaultRunConfig so any field the file omits keeps its default value.
func loadRunConfig(path string) (ga.RunConfig, error) {
	cfg := ga.DefaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return ga.RunConfig{}, fmt.Errorf("garegression: reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ga.RunConfig{}, fmt.Errorf("garegression: parsing config %s: %w", path, err)
	}

	return cfg, nil
}

func parseErrorMetric(name string) (ga.ErrorMetric, error) {
	switch name {
	case "ls":
		return ga.LS, nil
	case "lad":
		return ga.LAD, nil
	case "rmse":
		return ga.RMSE, nil
	case "minmax":
		return ga.MinMax, nil
	default:
		return 0, fmt.Errorf("garegression: unknown error metric %q (want ls, lad, rmse, or minmax)", name)
	}
}
