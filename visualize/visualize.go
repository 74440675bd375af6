// Package visualize renders sampled trajectories as tables, CSV, plots and summaries.
package visualize

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"github.com/hobbyjobs/arm-navigation/trajectory"
)

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 4, 64)
}

func checkSamples(names []string, samples []trajectory.Sample) error {
	for i, s := range samples {
		if len(s.Positions) != len(names) || len(s.Velocities) != len(names) {
			return errors.Errorf("sample %d has %d positions and %d velocities for %d joints",
				i, len(s.Positions), len(s.Velocities), len(names))
		}
	}
	return nil
}

// Header returns the column names used for samples of the named joints: the time, then every
// joint's position, then every joint's velocity.
func Header(names []string) []string {
	header := make([]string, 0, 2*len(names)+1)
	header = append(header, "time")
	for _, name := range names {
		header = append(header, name+"_pos")
	}
	for _, name := range names {
		header = append(header, name+"_vel")
	}
	return header
}

func row(s trajectory.Sample) []string {
	out := make([]string, 0, len(s.Positions)+len(s.Velocities)+1)
	out = append(out, formatFloat(s.Time))
	for _, p := range s.Positions {
		out = append(out, formatFloat(p))
	}
	for _, v := range s.Velocities {
		out = append(out, formatFloat(v))
	}
	return out
}

// Table writes the samples as a human-readable table.
func Table(w io.Writer, names []string, samples []trajectory.Sample) error {
	if err := checkSamples(names, samples); err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{}
	for _, col := range Header(names) {
		header = append(header, col)
	}
	t.AppendHeader(header)
	for _, s := range samples {
		r := table.Row{}
		for _, col := range row(s) {
			r = append(r, col)
		}
		t.AppendRow(r)
	}
	t.Render()
	return nil
}

// CSV writes the samples as comma separated values with a header line.
func CSV(w io.Writer, names []string, samples []trajectory.Sample) error {
	if err := checkSamples(names, samples); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(names)); err != nil {
		return err
	}
	for _, s := range samples {
		if err := cw.Write(row(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
