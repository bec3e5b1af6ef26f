package grid

import (
	"fmt"

	"github.com/katalvlaran/rastergrid/coord"
)

// Option configures DistanceField via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the tunables of a distance-field search.
type Options struct {
	// MaxDepth, if > 0, stops expanding cells at this distance; cells farther
	// away stay Unreached. 0 disables the limit.
	MaxDepth int

	// OnVisit is called for every cell as it is dequeued, with its distance.
	OnVisit func(c coord.Coord, depth int)

	err error
}

// DefaultOptions returns Options with no depth limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnVisit:  func(coord.Coord, int) {},
	}
}

// WithMaxDepth bounds the search.
//
//	d > 0:  stop at depth d
//	d == 0: explicit "no limit"
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a per-cell visit hook. A nil fn is ignored.
func WithOnVisit(fn func(c coord.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
