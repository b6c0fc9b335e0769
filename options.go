package groebner

import (
	"fmt"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/jonathanmweiss/go-groebner/monomial"
)

var log = logging.Logger("groebner")

// Strategy selects the order in which pending pairs are processed.
type Strategy int

const (
	// Sugar processes pairs by increasing sugar, then S-pairs before input
	// polynomials, then by increasing lcm.
	Sugar Strategy = iota
	// Normal processes pairs by increasing lcm.
	Normal
	// Degree processes pairs by increasing standard degree of the lcm.
	Degree
)

func (s Strategy) String() string {
	switch s {
	case Sugar:
		return "sugar"
	case Normal:
		return "normal"
	case Degree:
		return "degree"
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range []Strategy{Sugar, Normal, Degree} {
		if st.String() == s {
			return st, nil
		}
	}

	return Sugar, fmt.Errorf("%w: unknown strategy %q", ErrBadArg, s)
}

/*
Stats collects counters over every engine run of one call; an operation
built on several Groebner bases adds them all up. RunID identifies the last
run in the debug log.
*/
type Stats struct {
	RunID uuid.UUID
	Runs  int

	PairsCreated     int
	PairsProcessed   int
	CoprimeDiscarded int
	ChainDiscarded   int
	BDiscarded       int

	Reductions     int
	ZeroReductions int
	BasisSize      int

	MonomialFastPath   bool
	UnivariateFastPath bool

	// States counts the entries into each engine state.
	States map[State]int
}

func (s *Stats) enter(st State) {
	if s.States == nil {
		s.States = make(map[State]int)
	}

	s.States[st]++
}

type options struct {
	strategy    Strategy
	stats       *Stats
	interreduce bool
	trace       func(monomial.PP)
}

type Option func(*options)

// WithStrategy panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if s < Sugar || s > Degree {
		panic(fmt.Sprintf("unknown strategy %d", int(s)))
	}

	return func(o *options) {
		o.strategy = s
	}
}

// WithStats makes the computation fill s.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

/*
WithoutInterreduction stops the engine before the final interreduction: the
result is a minimal monic Groebner basis whose tails may still be reducible.
*/
func WithoutInterreduction() Option {
	return func(o *options) {
		o.interreduce = false
	}
}

// withInterreduction undoes WithoutInterreduction; cached bases are compared
// element by element and must be reduced.
func withInterreduction() Option {
	return func(o *options) {
		o.interreduce = true
	}
}

// WithReductionTrace calls fn with every leading power product the reductor
// looks at, in order.
func WithReductionTrace(fn func(lpp monomial.PP)) Option {
	return func(o *options) {
		o.trace = fn
	}
}

func gatherOptions(opts []Option) options {
	o := options{
		strategy:    Sugar,
		interreduce: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.stats == nil {
		o.stats = &Stats{}
	}

	return o
}
