package cli

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/hobbyjobs/arm-navigation/config"
	"github.com/hobbyjobs/arm-navigation/logging"
	"github.com/hobbyjobs/arm-navigation/trajectory"
	"github.com/hobbyjobs/arm-navigation/visualize"
)

// sampledJob is a job together with the samples of its trajectory.
type sampledJob struct {
	job     *config.Job
	traj    *trajectory.Trajectory
	samples []trajectory.Sample
}

// sampleJob reads the job at path, builds its trajectory and samples it. A positive
// numIntervals overrides the job's sample count.
func sampleJob(path string, numIntervals int, logger logging.Logger) (*sampledJob, error) {
	job, err := config.Read(path, logger)
	if err != nil {
		return nil, err
	}
	traj, err := job.Build(logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build trajectory for job %q", path)
	}
	if numIntervals <= 0 {
		numIntervals = job.SampleIntervals()
	}
	samples, err := traj.Sample(numIntervals)
	if err != nil {
		return nil, err
	}
	logger.Debugf("trajectory of job %q\n%s", path, traj.String())
	return &sampledJob{job: job, traj: traj, samples: samples}, nil
}

func sampleJobFromFlags(c *cli.Context) (*sampledJob, error) {
	if c.IsSet(samplesFlag) && c.Int(samplesFlag) < 1 {
		return nil, trajectory.NewInvalidSampleCountError(c.Int(samplesFlag))
	}
	return sampleJob(c.Path(jobFlag), c.Int(samplesFlag), loggerFrom(c))
}

type jsonSample struct {
	Time       float64   `json:"time"`
	Positions  []float64 `json:"positions"`
	Velocities []float64 `json:"velocities"`
}

type jsonTrajectory struct {
	Joints   []string     `json:"joints"`
	Duration float64      `json:"duration"`
	Samples  []jsonSample `json:"samples"`
}

func writeSamples(w io.Writer, format string, sampled *sampledJob) error {
	names := sampled.job.JointNames()
	switch format {
	case formatTable:
		return visualize.Table(w, names, sampled.samples)
	case formatCSV:
		return visualize.CSV(w, names, sampled.samples)
	case formatJSON:
		out := jsonTrajectory{
			Joints:   names,
			Duration: sampled.traj.Duration(),
			Samples:  make([]jsonSample, 0, len(sampled.samples)),
		}
		for _, s := range sampled.samples {
			out.Samples = append(out.Samples, jsonSample(s))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return checkFormat(format)
	}
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatCSV, formatJSON:
		return nil
	default:
		return errors.Errorf("unknown format %q, must be one of %s, %s or %s", format, formatTable, formatCSV, formatJSON)
	}
}

// SampleAction is the corresponding Action for 'sample'.
func SampleAction(c *cli.Context) error {
	if err := checkFormat(c.String(formatFlag)); err != nil {
		return err
	}
	sampled, err := sampleJobFromFlags(c)
	if err != nil {
		return err
	}
	return writeSamples(c.App.Writer, c.String(formatFlag), sampled)
}

// PlotAction is the corresponding Action for 'plot'.
func PlotAction(c *cli.Context) error {
	sampled, err := sampleJobFromFlags(c)
	if err != nil {
		return err
	}
	out := c.Path(outFlag)
	if err := visualize.PlotPNG(out, sampled.job.JointNames(), sampled.samples); err != nil {
		return err
	}
	infof(c.App.Writer, "wrote %d samples over %.4fs to %s", len(sampled.samples), sampled.traj.Duration(), out)
	return nil
}

// SummaryAction is the corresponding Action for 'summary'.
func SummaryAction(c *cli.Context) error {
	sampled, err := sampleJobFromFlags(c)
	if err != nil {
		return err
	}
	names := sampled.job.JointNames()
	if err := visualize.Summary(c.App.Writer, names, sampled.samples); err != nil {
		return err
	}
	if !c.Bool(histogramFlag) {
		return nil
	}
	for j, name := range names {
		printf(c.App.Writer, "")
		if err := visualize.Histogram(c.App.Writer, name, j, sampled.samples, c.Int(binsFlag), histogramWidth); err != nil {
			return err
		}
	}
	return nil
}

const histogramWidth = 40

// SchemaAction is the corresponding Action for 'schema'.
func SchemaAction(c *cli.Context) error {
	out, err := json.MarshalIndent(config.Schema(), "", "  ")
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", out)
	return nil
}
