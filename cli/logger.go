package cli

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hobbyjobs/arm-navigation/logging"
)

const (
	loggerKey  = "logger"
	logFileKey = "logfile"

	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
)

// setupLogger builds the logger actions share. Logs go to ErrWriter so they never mix with the
// samples written to Writer.
func setupLogger(c *cli.Context) error {
	logger := logging.NewBlankLogger("trajgen")
	logger.SetLevel(logging.INFO)
	if c.Bool(debugFlag) {
		logger.SetLevel(logging.DEBUG)
	}
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	if path := c.Path(logFileFlag); path != "" {
		logFile := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
		}
		logger.AddAppender(logging.NewWriterAppender(logFile))
		setMetadata(c, logFileKey, logFile)
	}
	setMetadata(c, loggerKey, logger)
	return nil
}

func closeLogger(c *cli.Context) error {
	var err error
	if logger, ok := c.App.Metadata[loggerKey].(logging.Logger); ok {
		err = multierr.Append(err, logger.Sync())
	}
	if logFile, ok := c.App.Metadata[logFileKey].(*lumberjack.Logger); ok {
		err = multierr.Append(err, logFile.Close())
	}
	return err
}

func setMetadata(c *cli.Context, key string, value interface{}) {
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[key] = value
}

// loggerFrom returns the logger set up for the app, or a blank one if there is none.
func loggerFrom(c *cli.Context) logging.Logger {
	logger, ok := c.App.Metadata[loggerKey].(logging.Logger)
	if !ok {
		return logging.NewBlankLogger("trajgen")
	}
	return logger
}
