package visualize

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"github.com/hobbyjobs/arm-navigation/referenceframe"
	"github.com/hobbyjobs/arm-navigation/trajectory"
)

func sampleTrajectory(t *testing.T, intervals int, points ...[]float64) []trajectory.Sample {
	t.Helper()
	path := make([][]referenceframe.Input, 0, len(points))
	limits := make([]trajectory.Limit, len(points[0]))
	for _, p := range points {
		path = append(path, referenceframe.FloatsToInputs(p))
	}
	traj, err := trajectory.New(path, limits, trajectory.DefaultMinSeparation, nil)
	test.That(t, err, test.ShouldBeNil)
	samples, err := traj.Sample(intervals)
	test.That(t, err, test.ShouldBeNil)
	return samples
}

func TestHeader(t *testing.T) {
	test.That(t, Header([]string{"a", "b"}), test.ShouldResemble, []string{"time", "a_pos", "b_pos", "a_vel", "b_vel"})
}

func TestTable(t *testing.T) {
	samples := sampleTrajectory(t, 4, []float64{0, 0}, []float64{1, 0.5})
	var buf bytes.Buffer
	test.That(t, Table(&buf, []string{"shoulder", "elbow"}, samples), test.ShouldBeNil)
	out := buf.String()
	test.That(t, out, test.ShouldContainSubstring, "SHOULDER_POS")
	test.That(t, out, test.ShouldContainSubstring, "ELBOW_VEL")
	test.That(t, out, test.ShouldContainSubstring, "2.0000")

	err := Table(&buf, []string{"shoulder"}, samples)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "for 1 joints")
}

func TestCSV(t *testing.T) {
	samples := sampleTrajectory(t, 4, []float64{0}, []float64{1})
	var buf bytes.Buffer
	test.That(t, CSV(&buf, []string{"shoulder"}, samples), test.ShouldBeNil)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(records), test.ShouldEqual, 6)
	test.That(t, records[0], test.ShouldResemble, []string{"time", "shoulder_pos", "shoulder_vel"})
	test.That(t, records[1], test.ShouldResemble, []string{"0.0000", "0.0000", "0.0000"})
	test.That(t, records[3], test.ShouldResemble, []string{"1.0000", "0.5000", "1.0000"})
	test.That(t, records[5], test.ShouldResemble, []string{"2.0000", "1.0000", "0.0000"})
}

func TestPlotPNG(t *testing.T) {
	samples := sampleTrajectory(t, 50, []float64{0, 1}, []float64{1, 0.5}, []float64{-0.5, 0.5})
	out := filepath.Join(t.TempDir(), "trajectory.png")
	test.That(t, PlotPNG(out, []string{"shoulder", "elbow"}, samples), test.ShouldBeNil)

	data, err := os.ReadFile(out)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(data), test.ShouldBeGreaterThan, 8)
	test.That(t, data[:8], test.ShouldResemble, []byte("\x89PNG\r\n\x1a\n"))

	var buf bytes.Buffer
	test.That(t, Plot(&buf, []string{"shoulder", "elbow"}, nil), test.ShouldNotBeNil)

	mismatched := filepath.Join(t.TempDir(), "mismatched.png")
	test.That(t, PlotPNG(mismatched, []string{"shoulder"}, samples), test.ShouldNotBeNil)
	_, err = os.Stat(mismatched)
	test.That(t, os.IsNotExist(err), test.ShouldBeTrue)
	test.That(t, PlotPNG(filepath.Join(t.TempDir(), "missing", "x.png"), []string{"shoulder"}, samples), test.ShouldNotBeNil)
}
