package gridpath

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultTurnPenalty is the cost added to a direction change when
// avoid-staircase shaping is on. It must stay strictly below the unit
// move cost or the shaped ordering breaks.
const DefaultTurnPenalty = 0.1

// Options defines parameters for the search.
type Options struct {
	// DiagonalMovement selects the neighbor enumeration policy.
	DiagonalMovement DiagonalMovement

	// Heuristic defaults to Manhattan when diagonal movement is
	// disabled and Octile otherwise (Manhattan is inadmissible once
	// diagonal steps exist).
	Heuristic Heuristic

	// Weight scales the heuristic, trading optimality for speed. Must
	// be at least 1; defaults to 1.
	Weight float64

	// AvoidStaircase adds TurnPenalty to every step that changes
	// direction. TurnPenalty must lie strictly inside (0, 1).
	AvoidStaircase bool
	TurnPenalty    float64

	// UseMomentum discounts sustained travel direction by Momentum per
	// step, and on a turn adds back Momentum times the heuristic
	// distance since the last turn. Momentum must be strictly smaller
	// than TurnPenalty.
	UseMomentum bool
	Momentum    float64

	// BreakTies resolves equal-f frontier ties against Preferences.
	// IgnoreStartTies skips resolution at the start node, whose
	// frequent three-way tie would otherwise force an extra search
	// pass.
	BreakTies       bool
	Preferences     Preferences
	IgnoreStartTies bool

	// Logger receives refinement-loop debug output and clamping
	// warnings. Defaults to a logger that discards everything.
	Logger *logrus.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithDiagonalMovement sets the diagonal-movement policy.
func WithDiagonalMovement(policy DiagonalMovement) Option {
	return func(options *Options) { options.DiagonalMovement = policy }
}

// WithHeuristic overrides the default heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithWeight sets the heuristic weight.
func WithWeight(weight float64) Option {
	return func(options *Options) { options.Weight = weight }
}

// WithAvoidStaircase enables turn-penalty shaping with the given
// penalty.
func WithAvoidStaircase(turnPenalty float64) Option {
	return func(options *Options) {
		options.AvoidStaircase = true
		options.TurnPenalty = turnPenalty
	}
}

// WithMomentum enables the sustained-direction discount.
func WithMomentum(momentum float64) Option {
	return func(options *Options) {
		options.UseMomentum = true
		options.Momentum = momentum
	}
}

// WithTieBreaking enables directional tie resolution against the given
// preference table.
func WithTieBreaking(preferences Preferences, ignoreStartTies bool) Option {
	return func(options *Options) {
		options.BreakTies = true
		options.Preferences = preferences
		options.IgnoreStartTies = ignoreStartTies
	}
}

// WithLogger routes engine logging to the given logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// applyOptions builds the effective configuration. Out-of-range values
// silently degrade tie and ordering guarantees, so instead of leaving
// that latent the engine clamps them here and logs the correction.
func applyOptions(opts []Option) *Options {
	options := &Options{
		Weight:      1,
		TurnPenalty: DefaultTurnPenalty,
		Logger:      discardLogger(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.Logger == nil {
		options.Logger = discardLogger()
	}

	if options.Weight < 1 {
		options.Logger.WithField("weight", options.Weight).Warn("weight below 1, clamping to 1")
		options.Weight = 1
	}
	if options.TurnPenalty <= 0 || options.TurnPenalty >= 1 {
		options.Logger.WithField("turnPenalty", options.TurnPenalty).
			Warnf("turn penalty outside (0, 1), clamping to %v", DefaultTurnPenalty)
		options.TurnPenalty = DefaultTurnPenalty
	}
	if options.UseMomentum {
		if options.Momentum <= 0 || options.Momentum >= options.TurnPenalty {
			clamped := options.TurnPenalty / 10
			options.Logger.WithFields(logrus.Fields{
				"momentum":    options.Momentum,
				"turnPenalty": options.TurnPenalty,
			}).Warnf("momentum outside (0, turnPenalty), clamping to %v", clamped)
			options.Momentum = clamped
		}
	}
	if options.Heuristic == nil {
		if options.DiagonalMovement == DiagonalNever {
			options.Heuristic = Manhattan
		} else {
			options.Heuristic = Octile
		}
	}
	return options
}

// epsilon is the tie-breaking nudge: large enough to decide the open
// list's ordering, small enough to never overturn a shaped cost
// difference.
func (o *Options) epsilon() float64 { return o.TurnPenalty / 100 }

// maxIterations bounds the refinement loop. Resolving a start-node tie
// can only be judged by comparing whole paths, which takes one extra
// pass.
func (o *Options) maxIterations() int {
	if o.BreakTies && !o.IgnoreStartTies {
		return 3
	}
	return 2
}
