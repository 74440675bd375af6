// Package cli contains the trajgen command line interface.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	debugFlag     = "debug"
	logFileFlag   = "log-file"
	jobFlag       = "job"
	samplesFlag   = "samples"
	formatFlag    = "format"
	outFlag       = "out"
	histogramFlag = "histogram"
	binsFlag      = "bins"

	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func newJobFlag() cli.Flag {
	return &cli.PathFlag{
		Name:      jobFlag,
		Aliases:   []string{"j"},
		Required:  true,
		TakesFile: true,
		Usage:     "load the trajectory job from `FILE`",
	}
}

func newSamplesFlag() cli.Flag {
	return &cli.IntFlag{
		Name:        samplesFlag,
		Usage:       "number of equal intervals to sample the trajectory into",
		DefaultText: "from job, or 100",
	}
}

func newSampleFlags() []cli.Flag {
	return []cli.Flag{
		newJobFlag(),
		newSamplesFlag(),
		&cli.StringFlag{
			Name:  formatFlag,
			Value: formatTable,
			Usage: "output format: table, csv or json",
		},
	}
}

// NewApp returns a new app with the trajgen commands, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "trajgen",
		Usage:           "time-parameterize joint space paths under velocity and acceleration limits",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.PathFlag{
				Name:      logFileFlag,
				TakesFile: true,
				Usage:     "also write logs to `FILE`, rotating it as it grows",
			},
		},
		Before: setupLogger,
		After:  closeLogger,
		// urfave exits the process itself for errors with an Errors method (multierr) unless this
		// is set; errors are always handed back to the caller of Run.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:      "sample",
				Usage:     "sample the trajectory of a job at equal intervals",
				UsageText: "trajgen sample --job <job.json> [--samples N] [--format table|csv|json]",
				Flags:     newSampleFlags(),
				Action:    SampleAction,
			},
			{
				Name:      "plot",
				Usage:     "plot joint positions and velocities of a job's trajectory to a PNG",
				UsageText: "trajgen plot --job <job.json> --out <trajectory.png> [--samples N]",
				Flags: []cli.Flag{
					newJobFlag(),
					&cli.PathFlag{
						Name:      outFlag,
						Aliases:   []string{"o"},
						Required:  true,
						TakesFile: true,
						Usage:     "write the plot to `FILE`",
					},
					newSamplesFlag(),
				},
				Action: PlotAction,
			},
			{
				Name:  "summary",
				Usage: "print per-joint statistics of a job's trajectory",
				Flags: []cli.Flag{
					newJobFlag(),
					newSamplesFlag(),
					&cli.BoolFlag{
						Name:  histogramFlag,
						Usage: "also print a velocity histogram for every joint",
					},
					&cli.IntFlag{
						Name:  binsFlag,
						Value: 10,
						Usage: "number of histogram bins",
					},
				},
				Action: SummaryAction,
			},
			{
				Name:   "watch",
				Usage:  "sample a job's trajectory again every time the job file changes",
				Flags:  newSampleFlags(),
				Action: WatchAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of job files",
				Action: SchemaAction,
			},
			{
				Name:   "version",
				Usage:  "print version info for this program",
				Action: VersionAction,
			},
		},
	}
}
