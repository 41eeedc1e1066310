package cfua

type options struct {
	strictEOF bool
}

// Option configures Parse.
type Option func(*options)

// WithStrictEOF makes Parse reject input that ends before the last line is
// terminated by a newline. By default a dangling scalar value or section name
// is committed as if the newline were present.
func WithStrictEOF() Option {
	return func(o *options) {
		o.strictEOF = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
