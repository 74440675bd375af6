package visualize

import (
	"fmt"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/hobbyjobs/arm-navigation/trajectory"
)

// JointSummary describes the motion of one joint over a sampled trajectory.
type JointSummary struct {
	Name         string
	MinPosition  float64
	MaxPosition  float64
	PeakVelocity float64
	MeanSpeed    float64
}

// Summarize computes per-joint statistics over the samples.
func Summarize(names []string, samples []trajectory.Sample) ([]JointSummary, error) {
	if err := checkSamples(names, samples); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, errors.New("no samples to summarize")
	}
	summaries := make([]JointSummary, 0, len(names))
	for j, name := range names {
		positions := make(stats.Float64Data, 0, len(samples))
		speeds := make(stats.Float64Data, 0, len(samples))
		for _, s := range samples {
			positions = append(positions, s.Positions[j])
			speeds = append(speeds, math.Abs(s.Velocities[j]))
		}
		summary := JointSummary{Name: name}
		var err error
		if summary.MinPosition, err = positions.Min(); err != nil {
			return nil, err
		}
		if summary.MaxPosition, err = positions.Max(); err != nil {
			return nil, err
		}
		if summary.PeakVelocity, err = speeds.Max(); err != nil {
			return nil, err
		}
		if summary.MeanSpeed, err = speeds.Mean(); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Summary writes a table of per-joint statistics over the samples.
func Summary(w io.Writer, names []string, samples []trajectory.Sample) error {
	summaries, err := Summarize(names, samples)
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Joint", "Min Position", "Max Position", "Peak Speed", "Mean Speed"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Name,
			formatFloat(s.MinPosition),
			formatFloat(s.MaxPosition),
			formatFloat(s.PeakVelocity),
			formatFloat(s.MeanSpeed),
		})
	}
	t.AppendFooter(table.Row{"", "", "Duration", formatFloat(samples[len(samples)-1].Time), ""})
	t.Render()
	return nil
}

// Histogram writes a text histogram of the named joint's sampled velocities.
func Histogram(w io.Writer, name string, joint int, samples []trajectory.Sample, bins, width int) error {
	if bins < 1 || width < 1 {
		return errors.Errorf("histogram needs at least one bin and column, got %d bins and width %d", bins, width)
	}
	velocities := make([]float64, 0, len(samples))
	for i, s := range samples {
		if joint < 0 || joint >= len(s.Velocities) {
			return errors.Errorf("sample %d has no joint %d", i, joint)
		}
		velocities = append(velocities, s.Velocities[joint])
	}
	if _, err := fmt.Fprintf(w, "%s velocity (rad/s)\n", name); err != nil {
		return err
	}
	if len(velocities) == 0 {
		_, err := fmt.Fprintln(w, "no samples")
		return err
	}
	if lo := floats.Min(velocities); lo == floats.Max(velocities) {
		_, err := fmt.Fprintf(w, "all %d samples at %s\n", len(velocities), formatFloat(lo))
		return err
	}
	return histogram.Fprint(w, histogram.Hist(bins, velocities), histogram.Linear(width))
}
