// Package ga implements a mixed-encoded genetic algorithm for fitting a
// chosen base function and operator structure to a univariate dataset.
//
// A chromosome encodes a sequence of genes, each a base function with 5 real
// coefficients and the operator joining it to the next gene. The GA driver
// evolves a population of such chromosomes toward a good fit using
// configurable crossover, mutation, and (externally supplied) selection.
//
// Basic usage:
//
//	cfg := ga.DefaultRunConfig()
//	fitnessFunc, err := ga.NewFitnessFunc(x, y, ga.RMSE)
//	algorithm, err := ga.New(cfg, fitnessFunc)
//	err = algorithm.Run()
//	best := algorithm.Best()
package ga

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// RunConfig holds every tunable of a GA run. It is the unit of
// configuration loaded from a YAML run-config file by the command-line
// front end.
type RunConfig struct {
	PopulationSize int `yaml:"population_size"`
	ChromosomeLen  int `yaml:"chromosome_length"`
	Generations    int `yaml:"generations"`

	CrossoverProb float64 `yaml:"crossover_prob"`
	MutationProb  float64 `yaml:"mutation_prob"`

	FuncMask string `yaml:"func_mask"`
	OpMask   string `yaml:"op_mask"`
	Bounds   Bounds `yaml:"bounds"`

	CrossoverMethod CrossoverMethod `yaml:"crossover_method"`
	BLXAlpha        float64         `yaml:"blx_alpha"`
	SBXEta          float64         `yaml:"sbx_eta"`

	MutationMethod MutationMethod `yaml:"mutation_method"`
	GaussScale     float64        `yaml:"gauss_scale"`

	UsePresetForm bool  `yaml:"use_preset_form"`
	PresetForm    []int `yaml:"preset_form"`

	Elitism bool  `yaml:"elitism"`
	Seed    int64 `yaml:"seed"`
}

// DefaultRunConfig returns a RunConfig with the same defaults as the
// original mixed-encoded GA: simulated binary crossover, Gauss mutation,
// elitism enabled, every base function and operator available.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		PopulationSize:  100,
		ChromosomeLen:   3,
		Generations:     500,
		CrossoverProb:   0.8,
		MutationProb:    0.05,
		FuncMask:        allOnes(NumBaseFunctions),
		OpMask:          allOnes(NumOperators),
		Bounds:          defaultBounds(),
		CrossoverMethod: SimulatedBinary,
		BLXAlpha:        0.5,
		SBXEta:          4.0,
		MutationMethod:  GaussMutation,
		GaussScale:      6.0,
		Elitism:         true,
	}
}

func allOnes(n int) string {
	mask := make([]byte, n)
	for i := range mask {
		mask[i] = '1'
	}
	return string(mask)
}

func defaultBounds() Bounds {
	return Bounds{
		{Lo: -10, Hi: 10},
		{Lo: -10, Hi: 10},
		{Lo: -10, Hi: 10},
		{Lo: -10, Hi: 10},
		{Lo: -10, Hi: 10},
	}
}

// Validate checks cfg for internal consistency, returning a wrapped error
// describing the first problem found.
func (cfg RunConfig) Validate() error {
	if cfg.PopulationSize < 2 {
		return fmt.Errorf("ga: population_size must be at least 2, got %d", cfg.PopulationSize)
	}
	if cfg.ChromosomeLen < 1 {
		return fmt.Errorf("ga: chromosome_length must be at least 1, got %d", cfg.ChromosomeLen)
	}
	if cfg.Generations < 1 {
		return fmt.Errorf("ga: generations must be at least 1, got %d", cfg.Generations)
	}
	if cfg.CrossoverProb < 0 || cfg.CrossoverProb > 1 {
		return fmt.Errorf("ga: crossover_prob must be between 0 and 1, got %f", cfg.CrossoverProb)
	}
	if cfg.MutationProb < 0 || cfg.MutationProb > 1 {
		return fmt.Errorf("ga: mutation_prob must be between 0 and 1, got %f", cfg.MutationProb)
	}
	if err := validFuncMask(cfg.FuncMask); err != nil {
		return fmt.Errorf("ga: invalid run config: %w", err)
	}
	if err := validOpMask(cfg.OpMask); err != nil {
		return fmt.Errorf("ga: invalid run config: %w", err)
	}
	for i, b := range cfg.Bounds {
		if b.Lo > b.Hi {
			return fmt.Errorf("ga: bounds[%d] has lo (%f) greater than hi (%f)", i, b.Lo, b.Hi)
		}
	}
	if cfg.UsePresetForm {
		wantLen := (len(cfg.PresetForm) + 1) / 2
		if len(cfg.PresetForm)%2 != 1 || wantLen != cfg.ChromosomeLen {
			return fmt.Errorf("ga: preset_form length is inconsistent with chromosome_length %d", cfg.ChromosomeLen)
		}
	}
	return nil
}

// GA is the mixed-encoded genetic algorithm driver. It owns a population of
// Candidates, evolves it generation by generation, and records fitness
// history along the way.
type GA struct {
	cfg         RunConfig
	fitnessFunc FitnessFunc
	selector    Selector
	rng         Source
	logger      *logrus.Logger

	progressCallback func(generation int, best Candidate, ga *GA)

	population []Candidate
	best       Candidate
	haveBest   bool

	FitnessMaxHistory  []float64
	FitnessMeanHistory []float64
	FitnessSDHistory   []float64
}

// Option customizes a GA instance beyond what RunConfig captures: the
// selection strategy, the random source, logging, and progress reporting.
type Option func(*GA)

// WithSelector sets the (externally supplied) selection strategy. Defaults
// to tournament selection, size 2, when not given.
func WithSelector(selector Selector) Option {
	return func(g *GA) { g.selector = selector }
}

// WithRandomSource overrides the default seeded Source.
func WithRandomSource(rng Source) Option {
	return func(g *GA) { g.rng = rng }
}

// WithLogger overrides the default logrus logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(g *GA) { g.logger = logger }
}

// WithProgressCallback sets a callback invoked at the end of every
// generation with the generation index and the current best candidate.
func WithProgressCallback(callback func(generation int, best Candidate, ga *GA)) Option {
	return func(g *GA) { g.progressCallback = callback }
}

// New builds a GA ready to Run against fitnessFunc, configured by cfg and
// any options. It returns an error if cfg fails Validate.
func New(cfg RunConfig, fitnessFunc FitnessFunc, options ...Option) (*GA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &GA{
		cfg:         cfg,
		fitnessFunc: fitnessFunc,
		rng:         NewSource(cfg.Seed),
		logger:      logrus.StandardLogger(),
	}
	for _, option := range options {
		option(g)
	}
	if g.selector == nil {
		g.selector = TournamentSelector{TournamentSize: 2}
	}

	return g, nil
}

// Best returns the best candidate found so far. Valid only after at least
// one generation of Run has completed.
func (g *GA) Best() Candidate {
	return g.best
}

// Population returns the current population. Callers must not mutate it.
func (g *GA) Population() []Candidate {
	return g.population
}

// Run evolves the population for cfg.Generations generations, evaluating,
// recording statistics, selecting, recombining and mutating each generation
// in turn. The run is single-threaded and cooperative: no generation
// overlaps another, so candidates never need locking.
//
// The end-of-generation callback, when set, is invoked once per generation
// right after that generation's statistics are appended - every generation,
// not just every 50th. The every-50-generations cadence mentioned alongside
// it is advice to callback authors about how often to do expensive work
// (e.g. redraw a chart), not a gate on how often the callback fires.
func (g *GA) Run() error {
	g.population = g.initialPopulation()

	for gen := 0; gen < g.cfg.Generations; gen++ {
		g.evaluatePopulation()
		g.recordStatistics()
		g.updateBest()

		if g.progressCallback != nil {
			g.progressCallback(gen, g.best, g)
		}
		if gen%50 == 0 {
			g.logger.WithFields(logrus.Fields{
				"generation":   gen,
				"fitness_max":  g.FitnessMaxHistory[len(g.FitnessMaxHistory)-1],
				"fitness_mean": g.FitnessMeanHistory[len(g.FitnessMeanHistory)-1],
			}).Debug("ga: generation advanced")
		}

		g.population = g.nextGeneration()
	}

	// The loop above already recorded one history entry per generation for
	// the population it evaluated at the start of that generation; the
	// population produced by the final generation's crossover/mutation is
	// this run's result, not an extra generation, so it's evaluated here for
	// Best()/Population() without appending another history entry.
	g.evaluatePopulation()
	g.updateBest()
	sort.Slice(g.population, func(i, j int) bool {
		return g.population[i].Fitness[0] > g.population[j].Fitness[0]
	})

	return nil
}

// initialPopulation generates cfg.PopulationSize candidates, using the
// preset function form when configured, otherwise a fully random form.
func (g *GA) initialPopulation() []Candidate {
	population := make([]Candidate, g.cfg.PopulationSize)
	for i := range population {
		if g.cfg.UsePresetForm {
			population[i] = GeneratePresetCandidate(g.rng, g.cfg.PresetForm, g.cfg.Bounds)
		} else {
			population[i] = GenerateRandomCandidate(g.rng, g.cfg.ChromosomeLen, g.cfg.Bounds, g.cfg.FuncMask, g.cfg.OpMask)
		}
	}
	return population
}

// evaluatePopulation evaluates every candidate whose IsEvaluated flag is
// false. Candidates untouched by crossover or mutation since the last
// evaluation, such as an elite survivor, are skipped.
func (g *GA) evaluatePopulation() {
	for i := range g.population {
		if g.population[i].IsEvaluated {
			continue
		}
		g.population[i].Fitness = g.fitnessFunc.Evaluate(g.population[i].Chromosome)
		g.population[i].IsEvaluated = true
	}
}

// recordStatistics appends the current generation's max, mean, and
// population standard deviation of fitness to the run's history.
func (g *GA) recordStatistics() {
	mean, sd := fitnessMeanSD(g.population)

	max := g.population[0].Fitness[0]
	for _, c := range g.population[1:] {
		if c.Fitness[0] > max {
			max = c.Fitness[0]
		}
	}

	g.FitnessMaxHistory = append(g.FitnessMaxHistory, max)
	g.FitnessMeanHistory = append(g.FitnessMeanHistory, mean)
	g.FitnessSDHistory = append(g.FitnessSDHistory, sd)
}

// updateBest replaces g.best if the population contains a fitter candidate.
func (g *GA) updateBest() {
	for _, c := range g.population {
		if !g.haveBest || c.Fitness[0] > g.best.Fitness[0] {
			g.best = c.Clone()
			g.haveBest = true
		}
	}
}

// nextGeneration produces the next population by selection, crossover, and
// mutation, optionally preserving the current best candidate unchanged.
func (g *GA) nextGeneration() []Candidate {
	next := make([]Candidate, 0, len(g.population))

	if g.cfg.Elitism {
		next = append(next, g.best.Clone())
	}

	for len(next) < len(g.population) {
		parents := g.selector.Select(g.population, g.rng)
		child1, child2 := g.crossover(parents[0], parents[1])
		g.mutate(&child1)
		g.mutate(&child2)

		next = append(next, child1)
		if len(next) < len(g.population) {
			next = append(next, child2)
		}
	}

	return next
}

// crossover dispatches to the configured real-coded crossover scheme.
func (g *GA) crossover(parent1, parent2 Candidate) (Candidate, Candidate) {
	switch g.cfg.CrossoverMethod {
	case BLXAlpha:
		return BLXAlphaCrossover(g.rng, parent1, parent2, g.cfg.CrossoverProb, g.cfg.BLXAlpha, g.cfg.Bounds)
	case SimulatedBinary:
		return SimulatedBinaryCrossover(g.rng, parent1, parent2, g.cfg.CrossoverProb, g.cfg.SBXEta, g.cfg.Bounds)
	case Wright:
		return WrightCrossover(g.rng, parent1, parent2, g.cfg.CrossoverProb, g.cfg.Bounds)
	default:
		panic("ga: invalid crossover method")
	}
}

// mutate dispatches to the configured coefficient mutation scheme, then
// mutates the function/operator form unless a preset form is in use.
func (g *GA) mutate(child *Candidate) {
	switch g.cfg.MutationMethod {
	case RandomMutation:
		RandomMutateCoeffs(g.rng, child, g.cfg.MutationProb, g.cfg.Bounds)
	case BoundaryMutation:
		BoundaryMutateCoeffs(g.rng, child, g.cfg.MutationProb, g.cfg.Bounds)
	case GaussMutation:
		GaussMutateCoeffs(g.rng, child, g.cfg.MutationProb, g.cfg.Bounds, g.cfg.GaussScale)
	default:
		panic("ga: invalid mutation method")
	}

	if !g.cfg.UsePresetForm {
		MutateForm(g.rng, child, g.cfg.MutationProb, g.cfg.FuncMask, g.cfg.OpMask)
	}
}
