package main

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// Training-data plumbing for the MLP demo: load a CSV of numeric rows
// (features..., target), shuffle it, and split it into train/test sets.
// Features live in a gonum dense matrix until the training loop converts a
// row into leaf Values; gradients never flow through anything here.
//
// The expected CSV has no header. For the XOR demo each row is
// "x0,x1,target", e.g.:
//
//   0,0,0
//   0,1,1
//   1,0,1
//   1,1,0
//
// ===========================================================================

import (
	"encoding/csv"
	"math/rand"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset holds feature rows and their scalar targets.
type Dataset struct {
	features *mat.Dense // one row per example
	targets  []float64
}

// Len returns the number of examples.
func (d *Dataset) Len() int { return len(d.targets) }

// NumFeatures returns the width of a feature row.
func (d *Dataset) NumFeatures() int {
	_, cols := d.features.Dims()
	return cols
}

// Row returns the i-th feature row and its target.
func (d *Dataset) Row(i int) ([]float64, float64) {
	return mat.Row(nil, i, d.features), d.targets[i]
}

// Inputs converts the i-th feature row into fresh leaf Values for a
// forward pass.
func (d *Dataset) Inputs(i int) []*Value {
	row, _ := d.Row(i)
	inputs := make([]*Value, len(row))
	for j, x := range row {
		inputs[j] = NewValue(x)
	}
	return inputs
}

// Shuffle permutes the examples in place using the given source.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	n := d.Len()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i], _ = d.Row(i)
	}
	rng.Shuffle(n, func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
		d.targets[i], d.targets[j] = d.targets[j], d.targets[i]
	})
	for i, row := range rows {
		d.features.SetRow(i, row)
	}
}

// Split divides the dataset at frac (e.g. 0.8 for an 80/20 train/test
// split). The first partition gets ceil-rounded toward frac.
func (d *Dataset) Split(frac float64) (train, test *Dataset) {
	n := d.Len()
	cut := int(float64(n) * frac)
	if cut < 1 {
		cut = 1
	}
	if cut > n {
		cut = n
	}
	cols := d.NumFeatures()

	first := mat.NewDense(cut, cols, nil)
	for i := 0; i < cut; i++ {
		row, _ := d.Row(i)
		first.SetRow(i, row)
	}
	train = &Dataset{features: first, targets: append([]float64{}, d.targets[:cut]...)}

	if cut == n {
		return train, &Dataset{features: mat.NewDense(1, cols, nil), targets: nil}
	}
	second := mat.NewDense(n-cut, cols, nil)
	for i := cut; i < n; i++ {
		row, _ := d.Row(i)
		second.SetRow(i-cut, row)
	}
	test = &Dataset{features: second, targets: append([]float64{}, d.targets[cut:]...)}
	return train, test
}

// LoadCSV reads a headerless CSV of numeric rows where the last column is
// the target and the rest are features.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dataset %s", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing dataset %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("dataset %s is empty", path)
	}

	cols := len(records[0]) - 1
	if cols < 1 {
		return nil, errors.Errorf("dataset %s needs at least one feature column and a target", path)
	}

	features := mat.NewDense(len(records), cols, nil)
	targets := make([]float64, len(records))
	for i, rec := range records {
		if len(rec) != cols+1 {
			return nil, errors.Errorf("dataset %s: row %d has %d columns, want %d", path, i+1, len(rec), cols+1)
		}
		for j, field := range rec {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset %s: row %d column %d", path, i+1, j+1)
			}
			if j < cols {
				features.Set(i, j, x)
			} else {
				targets[i] = x
			}
		}
	}
	return &Dataset{features: features, targets: targets}, nil
}

// XORDataset returns the built-in 4-example XOR truth table, repeated
// `copies` times so a shuffled split still leaves both classes on each
// side.
func XORDataset(copies int) *Dataset {
	if copies < 1 {
		copies = 1
	}
	truth := [][3]float64{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	features := mat.NewDense(4*copies, 2, nil)
	targets := make([]float64, 4*copies)
	for c := 0; c < copies; c++ {
		for i, row := range truth {
			features.SetRow(c*4+i, []float64{row[0], row[1]})
			targets[c*4+i] = row[2]
		}
	}
	return &Dataset{features: features, targets: targets}
}
