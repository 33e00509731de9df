package defparser

import "go.uber.org/zap"

// Option configures a parse.
type Option func(*options)

type options struct {
	logger        *zap.Logger
	lenientCounts bool
	divider       byte
	busOpen       byte
	busClose      byte
}

func defaultOptions() options {
	return options{
		logger:   zap.NewNop(),
		divider:  '/',
		busOpen:  '[',
		busClose: ']',
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that receives per-section debug events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLenientCounts accepts sections whose declared member count differs
// from the number of members parsed. Validate reports such sections.
func WithLenientCounts() Option {
	return func(o *options) { o.lenientCounts = true }
}

// WithDividerChar sets the hierarchy separator used in names. A whole-file
// parse switches to the character declared by DIVIDERCHAR.
func WithDividerChar(c byte) Option {
	return func(o *options) { o.divider = c }
}

// WithBusBitChars sets the bus index delimiters used in names. A whole-file
// parse switches to the pair declared by BUSBITCHARS.
func WithBusBitChars(open, close byte) Option {
	return func(o *options) {
		o.busOpen = open
		o.busClose = close
	}
}
