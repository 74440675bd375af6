package cli

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// WatchAction is the corresponding Action for 'watch'. It samples the job once, then again on every
// write to the job file until the command's context is cancelled. A job that fails to build while
// watching is reported and the previous output stands.
func WatchAction(c *cli.Context) error {
	format := c.String(formatFlag)
	if err := checkFormat(format); err != nil {
		return err
	}
	logger := loggerFrom(c)
	jobPath := c.Path(jobFlag)

	render := func() error {
		sampled, err := sampleJobFromFlags(c)
		if err != nil {
			return err
		}
		return writeSamples(c.App.Writer, format, sampled)
	}
	if err := render(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Warnw("failed to close file watcher", "error", err)
		}
	}()
	// editors often replace the file rather than write it, so watch the directory
	if err := watcher.Add(filepath.Dir(jobPath)); err != nil {
		return errors.Wrapf(err, "failed to watch %q", jobPath)
	}
	target := filepath.Clean(jobPath)
	logger.Infow("watching job file", "path", jobPath)

	for {
		select {
		case <-c.Context.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debugw("job file changed", "path", event.Name, "op", event.Op.String())
			if err := render(); err != nil {
				warningf(c.App.ErrWriter, "%s", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("file watcher error", "error", err)
		}
	}
}
