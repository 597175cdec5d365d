package main

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

// tuneLog appends one CSV row per evaluation and remembers the best one.
type tuneLog struct {
	w      *csv.Writer
	params *ParamVector

	evals       int
	bestFitness float64
	bestParams  []float64
}

func newTuneLog(out io.Writer, params *ParamVector) (*tuneLog, error) {
	l := &tuneLog{
		w:           csv.NewWriter(out),
		params:      params,
		bestFitness: math.Inf(1),
	}

	header := []string{"eval", "fitness", "nodes"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	if err := l.w.Write(header); err != nil {
		return nil, err
	}
	l.w.Flush()
	return l, l.w.Error()
}

// record logs an evaluation of the normalized vector x. Values are
// written clamped, as the run used them.
func (l *tuneLog) record(x []float64, fitness, nodes float64) error {
	l.evals++
	values := l.params.Clamp(l.params.Denormalize(x))
	if fitness < l.bestFitness {
		l.bestFitness = fitness
		l.bestParams = values
	}

	row := []string{
		strconv.Itoa(l.evals),
		strconv.FormatFloat(fitness, 'f', 1, 64),
		strconv.FormatFloat(nodes, 'f', 1, 64),
	}
	for _, v := range values {
		row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
	}
	if err := l.w.Write(row); err != nil {
		return err
	}
	l.w.Flush()
	return l.w.Error()
}
