package layout

import "log/slog"

// SolverOption configures a Solver during creation.
//
// Example:
//
//	s := layout.NewSolver(
//	    layout.WithLogger(slog.Default()),
//	    layout.WithObserver(collector),
//	)
type SolverOption func(*solverOptions)

type solverOptions struct {
	logger   *slog.Logger
	observer Observer
	zBias    float64
}

func defaultSolverOptions() solverOptions {
	return solverOptions{
		observer: nopObserver{},
		zBias:    DefaultZBias,
	}
}

// WithLogger sets the logger for one Solver. Without it the solver uses
// the package logger from Logger at the time of each pass.
func WithLogger(l *slog.Logger) SolverOption {
	return func(o *solverOptions) {
		o.logger = l
	}
}

// WithObserver installs instrumentation, such as metrics.Collector.
func WithObserver(obs Observer) SolverOption {
	return func(o *solverOptions) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithZBias sets the depth added to each node on top of its parent's.
// Non-positive values are ignored: siblings must always sort above their
// parent.
func WithZBias(bias float64) SolverOption {
	return func(o *solverOptions) {
		if bias > 0 && isFinite(bias) {
			o.zBias = bias
		}
	}
}
