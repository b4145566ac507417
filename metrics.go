package main

/*
WHAT'S GOING ON HERE?

Training metrics tracking and a self-contained HTML loss-curve report.

WHY HTML?
- Works everywhere (just open in a browser)
- Self-contained, no server and no plotting library
- Easy to share and archive training runs

The chart is a plain inline SVG polyline generated from the recorded
losses; summary statistics sit above it.
*/

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// TrainingMetrics stores per-epoch metrics collected during training.
type TrainingMetrics struct {
	Epochs        []int
	Losses        []float64
	LearningRates []float64
}

// NewTrainingMetrics creates an empty metrics tracker.
func NewTrainingMetrics() *TrainingMetrics {
	return &TrainingMetrics{}
}

// Record appends one epoch's data point.
func (m *TrainingMetrics) Record(epoch int, loss, lr float64) {
	m.Epochs = append(m.Epochs, epoch)
	m.Losses = append(m.Losses, loss)
	m.LearningRates = append(m.LearningRates, lr)
}

// SaveHTML writes a self-contained loss-curve report.
func (m *TrainingMetrics) SaveHTML(filename string) error {
	if len(m.Losses) == 0 {
		return errors.New("no metrics to save")
	}

	minLoss := floats.Min(m.Losses)
	maxLoss := floats.Max(m.Losses)
	avgLoss := floats.Sum(m.Losses) / float64(len(m.Losses))
	finalLoss := m.Losses[len(m.Losses)-1]

	const width, height, pad = 900, 360, 40
	span := maxLoss - minLoss
	if span == 0 {
		span = 1
	}
	points := make([]string, len(m.Losses))
	for i, loss := range m.Losses {
		x := pad + float64(i)/float64(max(len(m.Losses)-1, 1))*(width-2*pad)
		y := height - pad - (loss-minLoss)/span*(height-2*pad)
		points[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Training Loss - scalargrad</title>
<style>
  body { font-family: -apple-system, 'Segoe UI', sans-serif; background: #0d1117; color: #c9d1d9; padding: 24px; }
  h1 { font-size: 24px; margin-bottom: 12px; }
  .stats { display: flex; gap: 24px; margin-bottom: 20px; }
  .stat { background: #161b22; border: 1px solid #30363d; border-radius: 6px; padding: 12px 18px; }
  .stat .v { font-size: 20px; color: #58a6ff; }
  svg { background: #161b22; border: 1px solid #30363d; border-radius: 6px; }
</style>
</head>
<body>
<h1>Training Loss</h1>
<div class="stats">
  <div class="stat">final <div class="v">%.4f</div></div>
  <div class="stat">min <div class="v">%.4f</div></div>
  <div class="stat">max <div class="v">%.4f</div></div>
  <div class="stat">mean <div class="v">%.4f</div></div>
  <div class="stat">epochs <div class="v">%d</div></div>
</div>
<svg width="%d" height="%d" viewBox="0 0 %d %d">
  <polyline fill="none" stroke="#58a6ff" stroke-width="2" points="%s"/>
</svg>
</body>
</html>
`, finalLoss, minLoss, maxLoss, avgLoss, len(m.Losses),
		width, height, width, height, strings.Join(points, " "))

	if err := os.WriteFile(filename, []byte(html), 0o644); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", filename)
	}
	return nil
}
