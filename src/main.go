// BIO magnetometer plot entrypoint.
//
// Reads the fixed BIO day file (BIS and BOS magnetometer channels plus their differences) and
// writes two charts next to each other under data/assets:
//  1. an overlay of all twelve channels,
//  2. the four BIS-BOS difference channels.
//
// Design notes:
// - Paths are fixed literals; the only knob is --log-level.
// - Dependency direction: main -> magdata for parsing, charts for rendering; both receive the
//   logger built here.
// - Any failure aborts the run with exit status 1; files already written are left in place.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iafilius/BIOMagPlot/src/charts"
	"github.com/iafilius/BIOMagPlot/src/logging"
	"github.com/iafilius/BIOMagPlot/src/magdata"
)

const (
	inputPath       = "data/content/BIO_20060514_DOY134_D001_V1.csv"
	overlayPath     = "data/assets/BIO_20060514_DOY134_D001_V1.png"
	differencesPath = "data/assets/BIO_20060514_DOY134_D001_V1_differences.png"
)

// job names the input and the two outputs of one run.
type job struct {
	Input       string
	Overlay     string
	Differences string
	Chart       charts.Options
}

func defaultJob() job {
	return job{Input: inputPath, Overlay: overlayPath, Differences: differencesPath, Chart: charts.DefaultOptions()}
}

// run parses the input then renders both charts, stopping at the first error.
func run(j job, log *logging.Logger) error {
	defer log.TimeTrack(time.Now(), "run")
	ds, err := magdata.ReadFile(j.Input, log)
	if err != nil {
		return err
	}
	if err := charts.RenderOverlay(ds, j.Overlay, j.Chart, log); err != nil {
		return err
	}
	if err := charts.RenderDifferences(ds, j.Differences, j.Chart, log); err != nil {
		return err
	}
	log.Infof("Plots generated successfully.")
	return nil
}

// loggedError marks an error that RunE already reported through the logger.
type loggedError struct{ error }

func (e loggedError) Unwrap() error { return e.error }

func newRootCmd() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "biomagplot",
		Short:         "Plot BIS/BOS magnetometer channels from the BIO day file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(logLevel, cmd.ErrOrStderr())
			defer func() { _ = log.Sync() }()
			if _, err := logging.ParseLevel(logLevel); err != nil {
				log.Errorf("Invalid --log-level: %v", err)
				return loggedError{err}
			}

			log.Infof("Starting data processing...")
			if err := run(defaultJob(), log); err != nil {
				log.Errorf("Processing failed: %v", err)
				return loggedError{err}
			}
			log.Infof("Processing complete.")
			return nil
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Flag and argument errors happen before RunE has a logger.
		var le loggedError
		if !errors.As(err, &le) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
