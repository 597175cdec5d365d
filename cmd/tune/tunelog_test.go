package main

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestTuneLog_RecordsRowsAndBest(t *testing.T) {
	pv := NewParamVector()
	var buf bytes.Buffer

	tl, err := newTuneLog(&buf, pv)
	if err != nil {
		t.Fatal(err)
	}

	good := pv.Normalize(pv.DefaultVector())
	worse := make([]float64, len(good))

	for _, e := range []struct {
		x       []float64
		fitness float64
	}{
		{worse, 900},
		{good, 400},
		{worse, 700},
	} {
		if err := tl.record(e.x, e.fitness, 63); err != nil {
			t.Fatal(err)
		}
	}

	if tl.evals != 3 {
		t.Errorf("evals = %d, want 3", tl.evals)
	}
	if tl.bestFitness != 400 {
		t.Errorf("best fitness = %v, want 400", tl.bestFitness)
	}
	for i, want := range pv.DefaultVector() {
		if d := tl.bestParams[i] - want; d > 1e-9 || d < -1e-9 {
			t.Errorf("best %s = %v, want %v", pv.Specs[i].Name, tl.bestParams[i], want)
		}
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want header + 3", len(rows))
	}
	if got, want := len(rows[0]), 3+pv.Dim(); got != want {
		t.Errorf("header has %d columns, want %d", got, want)
	}
	if rows[2][0] != "2" || rows[2][1] != "400.0" || rows[2][2] != "63.0" {
		t.Errorf("second row = %v", rows[2][:3])
	}
}
