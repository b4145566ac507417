package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ===========================================================================
// TRAINING CLI - The Full Loop On a Real (Tiny) Problem
// ===========================================================================
//
// This command trains a small MLP on the XOR problem, end to end:
// load data -> shuffle -> split -> train -> evaluate -> save metrics.
//
// INTENTION:
// Validate that the engine's pieces compose into a working training loop.
// XOR is the smallest problem that actually needs a hidden layer, so a
// falling loss here exercises every part of the engine: graph building,
// backward, gradient accumulation across shared weights, zero-grad, and
// leaf-only weight updates.
//
// WHAT YOU'LL SEE:
// - Initial loss around 0.25-1.0 depending on the seed
// - Loss falling steadily within the first dozen epochs
// - Test accuracy reaching 100% well before 100 epochs with lr 0.1
//
// USAGE:
//   go run . train
//   go run . train -data=xor_data.csv -epochs=200 -lr=0.05 -hidden=8,4
//   go run . train -metrics=training_loss.html
//
// ===========================================================================

// RunTrainCommand implements the training CLI.
func RunTrainCommand(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)

	// Training hyperparameters
	epochs := fs.Int("epochs", 100, "Number of training epochs")
	lr := fs.Float64("lr", 0.1, "Learning rate")
	hidden := fs.String("hidden", "4", "Comma-separated hidden layer sizes")
	seed := fs.Int64("seed", 42, "Random seed for weight init and shuffling")

	// I/O
	dataPath := fs.String("data", "", "CSV dataset (features...,target); built-in XOR data when empty")
	metricsPath := fs.String("metrics", "", "Write an HTML loss-curve report to this path")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := DefaultTrainingConfig()
	cfg.Epochs = *epochs
	cfg.LearningRate = *lr
	cfg.Seed = *seed
	sizes, err := parseHiddenSizes(*hidden)
	if err != nil {
		return err
	}
	cfg.Hidden = sizes

	fmt.Println("===========================================================================")
	fmt.Println("TRAINING AN MLP WITH SCALAR AUTOGRAD")
	fmt.Println("===========================================================================")
	fmt.Println()

	// Step 1: Load the dataset.
	var ds *Dataset
	if *dataPath != "" {
		fmt.Println("Step 1: Loading dataset from", *dataPath)
		ds, err = LoadCSV(*dataPath)
		if err != nil {
			return err
		}
	} else {
		fmt.Println("Step 1: Using built-in XOR dataset")
		ds = XORDataset(5)
	}
	fmt.Printf("  %d examples, %d features\n\n", ds.Len(), ds.NumFeatures())

	// Step 2: Shuffle and split.
	fmt.Printf("Step 2: Shuffling and splitting %.0f%%/%.0f%%\n\n", cfg.TrainFrac*100, (1-cfg.TrainFrac)*100)
	ds.Shuffle(rand.New(rand.NewSource(cfg.Seed)))
	train, test := ds.Split(cfg.TrainFrac)

	// Step 3: Train.
	arch := append([]int{ds.NumFeatures()}, append(cfg.Hidden, 1)...)
	fmt.Printf("Step 3: Training %v network, %d epochs, lr %g\n", arch, cfg.Epochs, cfg.LearningRate)
	metrics := NewTrainingMetrics()
	model, losses := Train(train, cfg, metrics)
	fmt.Printf("  Final loss: %.4f\n\n", losses[len(losses)-1])

	// Step 4: Evaluate on the held-out set.
	fmt.Println("Step 4: Test set evaluation")
	result := Evaluate(model, test, true)
	fmt.Printf("\nTest Accuracy: %.1f%%\n", result.Accuracy*100)
	fmt.Printf("Test Average Error: %.4f\n", result.MeanError)

	// Step 5: Save metrics.
	if *metricsPath != "" {
		fmt.Println("\nStep 5: Saving metrics to", *metricsPath)
		if err := metrics.SaveHTML(*metricsPath); err != nil {
			return err
		}
	}
	return nil
}

// parseHiddenSizes parses "8,4" into []int{8, 4}.
func parseHiddenSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, errors.Errorf("invalid hidden layer size %q", part)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("at least one hidden layer size is required")
	}
	return sizes, nil
}
