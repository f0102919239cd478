// Package errutil adapts cesium's util/errutil "catch" pattern: a
// small helper that runs a sequence of fallible steps and remembers
// their errors without each call site re-checking err != nil by hand.
//
// The engine uses it in exactly the place cesium's kfs.Sync used it
// (internal/kv and kfs/sync.go's "c := errutil.NewCatchSimple(...)"):
// freeing every child of the root during Shutdown, where one child's
// cleanup failing should not stop the others from being attempted.
package errutil

import "github.com/cockroachdb/errors"

// Option configures a Catch.
type Option func(*Catch)

// WithAggregation makes Exec keep running after an error, joining
// every error seen into the final result. Without it, Exec after the
// first error becomes a no-op, matching cesium's CatchWrite/CatchRead
// short-circuiting behavior.
func WithAggregation() Option {
	return func(c *Catch) { c.aggregate = true }
}

// Catch runs a series of func() error steps, collecting failures
// according to its configured Option.
type Catch struct {
	aggregate bool
	errs      []error
}

// New constructs a Catch with the given options.
func New(opts ...Option) *Catch {
	c := &Catch{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exec runs fn if the Catch isn't already short-circuited (aggregation
// off and a prior error seen), and records its error if any.
func (c *Catch) Exec(fn func() error) {
	if !c.aggregate && len(c.errs) > 0 {
		return
	}
	if err := fn(); err != nil {
		c.errs = append(c.errs, err)
	}
}

// Error returns nil if every step succeeded, the single error if
// exactly one was recorded, or a joined error otherwise.
func (c *Catch) Error() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	default:
		return errors.CombineErrors(c.errs[0], errors.Newf("and %d more error(s): %v", len(c.errs)-1, c.errs[1:]))
	}
}
