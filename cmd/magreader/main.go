package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/BIOMagPlot/src/logging"
	"github.com/iafilius/BIOMagPlot/src/magdata"
)

const defaultInput = "data/content/BIO_20060514_DOY134_D001_V1.csv"

// summarize prints row count, time span and per-channel range of ds.
func summarize(w io.Writer, ds *magdata.Dataset) {
	fmt.Fprintf(w, "Rows: %d\n", ds.Len())
	if ds.Len() == 0 {
		return
	}
	first, last := ds.Times[0], ds.Times[ds.Len()-1]
	fmt.Fprintf(w, "Span: %s .. %s (%s)\n", first.Format("2006-01-02T15:04:05Z07:00"), last.Format("2006-01-02T15:04:05Z07:00"), last.Sub(first))
	for _, ch := range magdata.AllChannels {
		lo, hi := math.Inf(1), math.Inf(-1)
		finite, nan, inf := 0, 0, 0
		for _, v := range ds.Column(ch) {
			switch {
			case math.IsNaN(v):
				nan++
			case math.IsInf(v, 0):
				inf++
			default:
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
				finite++
			}
		}
		if finite == 0 {
			fmt.Fprintf(w, "%-10s min=n/a max=n/a", ch)
		} else {
			fmt.Fprintf(w, "%-10s min=%.3f max=%.3f", ch, lo, hi)
		}
		if nan > 0 {
			fmt.Fprintf(w, " nan=%d", nan)
		}
		if inf > 0 {
			fmt.Fprintf(w, " inf=%d", inf)
		}
		fmt.Fprintln(w)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:          "magreader [file]",
		Short:        "Summarize a BIO magnetometer CSV without plotting",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := defaultInput
			if len(args) == 1 {
				file = args[0]
			}
			log := logging.New(logLevel, cmd.ErrOrStderr())
			defer func() { _ = log.Sync() }()
			ds, err := magdata.ReadFile(file, log)
			if err != nil {
				return err
			}
			summarize(cmd.OutOrStdout(), ds)
			return nil
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
