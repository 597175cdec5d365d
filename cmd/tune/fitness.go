package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/bloom/config"
	"github.com/pthm-cable/bloom/game"
	"github.com/pthm-cable/bloom/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	bestNodes   uint32
	lastNodes   float64 // mean tree size from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// LastNodes returns the mean final tree size from the most recent evaluation.
func (fe *FitnessEvaluator) LastNodes() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastNodes
}

// BestNodes returns the tree size of the best seed seen so far.
func (fe *FitnessEvaluator) BestNodes() uint32 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestNodes
}

// Leaves still able to spawn at the tick cap cost this many ticks each.
const unsaturatedPenalty = 50

// runResult holds the results from a single simulation run.
type runResult struct {
	saturationTicks int32 // first tick with no spawnable leaves, or maxTicks
	spawnable       int   // spawnable leaves left at the end
	nodes           uint32
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the mean number of frames until every leaf is at the
// generation limit.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]*runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalNodes float64
	bestSeed := math.Inf(1)
	var bestSeedNodes uint32
	for _, r := range results {
		f := computeFitness(r)
		totalFitness += f
		totalNodes += float64(r.nodes)
		if f < bestSeed {
			bestSeed = f
			bestSeedNodes = r.nodes
		}
	}

	n := float64(len(fe.seeds))
	avgFitness := totalFitness / n

	fe.mu.Lock()
	if avgFitness < fe.bestFitness {
		fe.bestFitness = avgFitness
		fe.bestNodes = bestSeedNodes
	}
	fe.lastNodes = totalNodes / n
	fe.mu.Unlock()

	return avgFitness
}

// runSimulation executes a single headless run until the tree saturates
// or maxTicks passes.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	g := game.NewGameWithOptions(game.Options{
		Config: cfg,
		Host:   &game.HeadlessHost{FixedFPS: int32(cfg.Screen.TargetFPS)},
		Seed:   seed,
	})
	defer g.Unload()

	// Sampling walks every node, so only check once per simulated second.
	checkEvery := int32(max(cfg.Screen.TargetFPS, 1))

	var sample telemetry.TreeSample
	for g.Tick() < fe.maxTicks {
		g.Frame()
		if g.Tick()%checkEvery != 0 {
			continue
		}
		sample = g.Sample()
		if sample.SpawnableLeaves == 0 {
			return &runResult{saturationTicks: g.Tick(), nodes: g.NodeCount()}
		}
	}

	sample = g.Sample()
	return &runResult{
		saturationTicks: fe.maxTicks,
		spawnable:       sample.SpawnableLeaves,
		nodes:           g.NodeCount(),
	}
}

// copyConfig returns an independent copy of the base config.
// Config holds only value fields, so a struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness calculates the scalar fitness (lower = better).
func computeFitness(r *runResult) float64 {
	return float64(r.saturationTicks) + unsaturatedPenalty*float64(r.spawnable)
}
