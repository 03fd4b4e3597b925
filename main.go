package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tempviz/analysis"
	"tempviz/baseline"
	"tempviz/common"
	"tempviz/plotting"
	"tempviz/sensor"
)

var (
	flagURL        string
	flagJSONIn     string
	flagJSONOut    string
	flagWindows    []int
	flagTimestamp  bool
	flagMarkerSize int
	flagFigureOut  string
	flagHistOut    string
	flagBaselines  bool
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tempviz",
		Short:         "Plot workbench temperature data and estimate its compressibility",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(); err != nil {
				return err
			}
			return run()
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flagURL, "url", "u", "", "URL to retrieve JSON data (make sure to include http://)")
	f.StringVarP(&flagJSONIn, "json-in", "j", "", "read JSON from file instead of fetching")
	f.StringVarP(&flagJSONOut, "json-out", "d", "dump.json", "dump fetched JSON to file (does nothing with --json-in)")
	f.IntSliceVarP(&flagWindows, "windows", "w", []int{15, 30, 60}, "sliding window widths; a single 0 disables averaging")
	f.BoolVarP(&flagTimestamp, "timestamp", "t", false, "label the X axis as timestamps instead of relative seconds")
	f.IntVarP(&flagMarkerSize, "marker-size", "m", 1, "marker size of the raw data")
	f.StringVarP(&flagFigureOut, "figure-out", "f", "plot.png", "output plot filename")
	f.StringVarP(&flagHistOut, "histogram", "g", "zero.png", "output zero-run histogram filename")
	f.BoolVar(&flagBaselines, "baselines", true, "also compress the raw buffer with general-purpose codecs")

	return cmd
}

func validateFlags() error {
	if (flagURL == "") == (flagJSONIn == "") {
		return errors.New("exactly one of --url and --json-in is required")
	}
	if flagMarkerSize < 1 {
		return errors.Errorf("marker size must be positive, got %d", flagMarkerSize)
	}
	return validateWindows(flagWindows)
}

func validateWindows(windows []int) error {
	if len(windows) == 1 && windows[0] == 0 {
		return nil
	}
	for _, w := range windows {
		if w < 1 {
			return errors.Errorf("window widths must be positive, got %d", w)
		}
	}
	return nil
}

func run() error {
	logrus.Info("grabbing data")
	var (
		buf []byte
		err error
	)
	if flagURL != "" {
		buf, err = common.GrabURL(flagURL, flagJSONOut)
	} else {
		buf, err = common.GrabFile(flagJSONIn)
	}
	if err != nil {
		return err
	}

	logrus.Info("processing data")
	temps := sensor.Decode(buf)
	if len(temps) == 0 {
		return errors.New("payload decoded to zero samples")
	}
	smoothed := common.SmoothAll(temps, flagWindows)

	rs := analysis.ExtractRuns(temps)
	est, err := analysis.Estimate(rs)
	if err != nil {
		logrus.Warnf("skipping compression estimate: %v", err)
	} else {
		analysis.WriteReport(os.Stdout, rs, est)
	}

	if flagBaselines {
		baseline.WriteReport(os.Stdout, baseline.Ratios(sensor.DecodeRaw(buf)))
		if rs.RunCount > 0 {
			packed, err := baseline.PackRunLengths(rs.RunLengths())
			if err != nil {
				return err
			}
			fmt.Printf("run lengths alone pack to %d B via simple8b\n", len(packed))
		}
	}

	logrus.Info("creating plot")
	// TODO: derive wall-clock timestamps from the server's sample rate field
	// once it is reported; --timestamp only relabels the axis until then.
	cfg := plotting.FigureConfig{
		Path:         flagFigureOut,
		MarkerSize:   flagMarkerSize,
		UseTimestamp: flagTimestamp,
	}
	if err := plotting.TimeSeries(cfg, temps, smoothed); err != nil {
		return errors.Wrapf(err, "write figure %s", flagFigureOut)
	}

	if rs.RunCount > 0 {
		if err := plotting.ZeroRunHist(flagHistOut, rs.Hist); err != nil {
			return errors.Wrapf(err, "write histogram %s", flagHistOut)
		}
	} else {
		logrus.Warn("no zero runs, skipping histogram figure")
	}

	return nil
}
