package main

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// The training loop for the MLP demo.
//
// THE TRAINING PROCESS:
//
// 1. Forward pass: inputs -> MLP -> prediction -> squared-error loss.
//    Every step builds a fresh computation graph rooted at the loss.
//
// 2. Backward pass: loss.Backward() fills in d(loss)/d(parameter) for
//    every weight and bias.
//
// 3. Update: parameter.data -= lr * parameter.grad, applied directly to
//    the leaf nodes. The graph from this step is then unreachable and the
//    GC reclaims it.
//
// 4. Repeat over the dataset for each epoch, zeroing parameter gradients
//    between steps (Backward accumulates on purpose).
//
// This is plain stochastic gradient descent, one example at a time. For a
// 17-parameter network learning XOR there is nothing to be gained from
// batching or adaptive optimizers, and the simple loop keeps the engine's
// usage pattern obvious.
//
// ===========================================================================

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// TrainingConfig holds hyperparameters for the MLP demo.
type TrainingConfig struct {
	Hidden       []int // hidden layer sizes; the output layer (1) is appended
	Epochs       int
	LearningRate float64
	Seed         int64   // seeds weight init and the shuffle
	TrainFrac    float64 // train/test split fraction
	LogInterval  int     // print loss every N epochs (0 = silent)
}

// DefaultTrainingConfig returns the classic XOR setup: a 2->4->1 network,
// lr 0.1, 100 epochs.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Hidden:       []int{4},
		Epochs:       100,
		LearningRate: 0.1,
		Seed:         42,
		TrainFrac:    0.8,
		LogInterval:  10,
	}
}

// Train runs SGD over the training set and returns the trained model with
// the per-epoch mean losses. Metrics are recorded into m when non-nil.
func Train(ds *Dataset, cfg TrainingConfig, m *TrainingMetrics) (*MLP, []float64) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	sizes := append(append([]int{}, cfg.Hidden...), 1)
	model := NewMLP(rng, ds.NumFeatures(), sizes)

	losses := make([]float64, 0, cfg.Epochs)
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		sampleLosses := make([]float64, ds.Len())
		for i := 0; i < ds.Len(); i++ {
			inputs := ds.Inputs(i)
			_, target := ds.Row(i)

			pred := model.Forward(inputs)[0]
			loss := pred.Sub(NewValue(target)).Pow(2)
			sampleLosses[i] = loss.Data()

			model.ZeroGrad()
			loss.Backward()
			model.UpdateWeights(cfg.LearningRate)
		}

		epochLoss := floats.Sum(sampleLosses) / float64(len(sampleLosses))
		losses = append(losses, epochLoss)
		if m != nil {
			m.Record(epoch, epochLoss, cfg.LearningRate)
		}
		if cfg.LogInterval > 0 && epoch%cfg.LogInterval == 0 {
			fmt.Printf("Epoch %d: loss = %.4f\n", epoch, epochLoss)
		}
	}
	return model, losses
}

// EvalResult summarizes test-set performance.
type EvalResult struct {
	Accuracy  float64 // fraction of predictions within 0.5 of the target
	MeanError float64 // mean absolute error
}

// Evaluate runs the model over a held-out set. When verbose, each example
// is printed with its prediction.
func Evaluate(model *MLP, ds *Dataset, verbose bool) EvalResult {
	if ds.Len() == 0 {
		return EvalResult{}
	}
	correct := 0
	totalError := 0.0
	for i := 0; i < ds.Len(); i++ {
		row, target := ds.Row(i)
		pred := model.Forward(ds.Inputs(i))[0].Data()
		err := math.Abs(pred - target)
		totalError += err
		if err < 0.5 {
			correct++
		}
		if verbose {
			fmt.Printf("Input: %v, Target: %.1f, Predicted: %.3f\n", row, target, pred)
		}
	}
	return EvalResult{
		Accuracy:  float64(correct) / float64(ds.Len()),
		MeanError: totalError / float64(ds.Len()),
	}
}
