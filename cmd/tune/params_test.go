package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/bloom/config"
)

func TestParamVector_NormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestParamVector_DefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	pv := NewParamVector()
	got := pv.ExtractFromConfig(cfg)
	for i, want := range pv.DefaultVector() {
		if got[i] != want {
			t.Errorf("%s: config has %v, spec default %v", pv.Specs[i].Name, got[i], want)
		}
	}
}

func TestParamVector_ApplyClampsAndDerives(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	pv := NewParamVector()
	pv.ApplyToConfig(cfg, []float64{100, 90, -5})

	if cfg.Population.Speed != 12 {
		t.Errorf("speed = %v, want clamped 12", cfg.Population.Speed)
	}
	if cfg.Spawn.SpreadOffsetDeg != 0 {
		t.Errorf("offset = %v, want clamped 0", cfg.Spawn.SpreadOffsetDeg)
	}
	if math.Abs(cfg.Derived.Spread-math.Pi/2) > 1e-12 {
		t.Errorf("derived spread = %v, want π/2", cfg.Derived.Spread)
	}
}

func TestComputeFitness(t *testing.T) {
	saturated := computeFitness(&runResult{saturationTicks: 800})
	capped := computeFitness(&runResult{saturationTicks: 800, spawnable: 2})

	if saturated != 800 {
		t.Errorf("saturated fitness = %v, want 800", saturated)
	}
	if capped <= saturated {
		t.Errorf("unsaturated run should score worse: %v <= %v", capped, saturated)
	}
}
