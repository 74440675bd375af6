// Package main is the trajgen command itself.
package main

import (
	"os"

	"github.com/hobbyjobs/arm-navigation/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		cli.Errorf(app.ErrWriter, "%s", err)
	}
}
