package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/metrics"
	"github.com/gogpu/layout/sceneio"
	"github.com/gogpu/layout/text"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel string
	measurer string
	metrics  bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "layoutctl",
		Short:         "Solve and inspect anchor layout scenes",
		Long:          `layoutctl loads a YAML scene, runs a layout pass over it and prints or draws the resolved rectangles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			layout.SetLogger(newLogger(cmd.ErrOrStderr(), level))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.measurer, "measurer", "face", "Text measurer: face, shaping, none")
	pf.BoolVar(&flags.metrics, "metrics", false, "Print pass metrics to stderr in Prometheus text format")

	root.AddCommand(newSolveCmd(flags), newRenderCmd(flags), newHitCmd(flags), newVersionCmd())
	return root
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}

func (f *globalFlags) textMeasurer() (text.Measurer, error) {
	switch strings.ToLower(f.measurer) {
	case "face":
		return text.NewCached(text.DefaultFaceMeasurer()), nil
	case "shaping":
		return text.NewCached(text.DefaultShapingMeasurer()), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid --measurer %q", f.measurer)
	}
}

// solveFile loads a scene, measures its labels and runs one pass.
func (f *globalFlags) solveFile(cmd *cobra.Command, path string) (*sceneio.Scene, error) {
	doc, err := sceneio.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := doc.Build()
	if err != nil {
		return nil, err
	}
	m, err := f.textMeasurer()
	if err != nil {
		return nil, err
	}

	var opts []layout.SolverOption
	var collector *metrics.Collector
	if f.metrics {
		collector = metrics.NewCollector("")
		opts = append(opts, layout.WithObserver(collector))
	}
	if err := s.Solve(layout.NewSolver(opts...), m); err != nil {
		return nil, err
	}
	if collector != nil {
		if err := writeMetrics(cmd, collector); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func writeMetrics(cmd *cobra.Command, c *metrics.Collector) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
			return err
		}
	}
	return nil
}

// openOutput returns the command's stdout for "-" and a created file
// otherwise, with the function that closes it.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
