package ramfs

import "go.uber.org/zap"

// options holds the Tuning Constants from spec.md §6, plus the ambient
// logger. Defaults match the spec exactly. Grounded on kfs/options.go's
// options struct and functional-option constructors.
type options struct {
	logger                    *zap.Logger
	maxHandles                int
	initialCapacity           int
	reallocSlack              int
	detachPlaceholderCapacity int
}

// Option configures a FS at construction time.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	mergeDefaults(o)
	return o
}

func mergeDefaults(o *options) {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.maxHandles <= 0 {
		o.maxHandles = 64
	}
	if o.initialCapacity <= 0 {
		o.initialCapacity = 1024
	}
	if o.reallocSlack <= 0 {
		o.reallocSlack = 4096
	}
	if o.detachPlaceholderCapacity <= 0 {
		o.detachPlaceholderCapacity = 64
	}
}

// WithLogger sets the structured logger the engine reports lifecycle
// events and exclusion-gate rejections to. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

// WithMaxHandles sets the handle table's total capacity, including the
// reserved slot 0. spec.md §6 recommends 16–64; defaults to 64.
func WithMaxHandles(n int) Option { return func(o *options) { o.maxHandles = n } }

// WithInitialCapacity sets the byte capacity a newly created file
// starts with. Defaults to 1024, per spec.md §6.
func WithInitialCapacity(n int) Option { return func(o *options) { o.initialCapacity = n } }

// WithReallocSlack sets the extra capacity added whenever a write
// forces a buffer reallocation. Defaults to 4096, per spec.md §6.
func WithReallocSlack(n int) Option { return func(o *options) { o.reallocSlack = n } }

// WithDetachPlaceholderCapacity sets the size of the placeholder
// buffer a detached node is left with for the brief window before
// unlink. Defaults to 64, per spec.md §6.
func WithDetachPlaceholderCapacity(n int) Option {
	return func(o *options) { o.detachPlaceholderCapacity = n }
}
