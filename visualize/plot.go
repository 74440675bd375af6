package visualize

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hobbyjobs/arm-navigation/trajectory"
	"github.com/hobbyjobs/arm-navigation/utils"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 8 * vg.Inch
)

func newJointPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p
}

func addJointLine(p *plot.Plot, name string, joint int, pts plotter.XYs) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrapf(err, "failed to plot joint %q", name)
	}
	line.Color = plotutil.Color(joint)
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

// Plot draws joint positions above joint velocities against time and writes the figure to w as a PNG.
func Plot(w io.Writer, names []string, samples []trajectory.Sample) error {
	if err := checkSamples(names, samples); err != nil {
		return err
	}
	if len(samples) == 0 {
		return errors.New("no samples to plot")
	}

	pos := newJointPlot("Joint positions", "position (rad)")
	vel := newJointPlot("Joint velocities", "velocity (rad/s)")
	for j, name := range names {
		posPts := make(plotter.XYs, 0, len(samples))
		velPts := make(plotter.XYs, 0, len(samples))
		for _, s := range samples {
			posPts = append(posPts, plotter.XY{X: s.Time, Y: s.Positions[j]})
			velPts = append(velPts, plotter.XY{X: s.Time, Y: s.Velocities[j]})
		}
		if err := addJointLine(pos, name, j, posPts); err != nil {
			return err
		}
		if err := addJointLine(vel, name, j, velPts); err != nil {
			return err
		}
	}

	plots := [][]*plot.Plot{{pos}, {vel}}
	img := vgimg.New(plotWidth, plotHeight)
	dc := draw.New(img)
	canvases := plot.Align(plots, draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Points(10)}, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// PlotPNG writes the figure drawn by Plot to the PNG file at path. No file is left behind on error.
func PlotPNG(path string, names []string, samples []trajectory.Sample) (err error) {
	//nolint:gosec
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create plot file %q", path)
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
		if err != nil {
			utils.RemoveFileNoError(path)
		}
	}()
	return Plot(f, names, samples)
}
