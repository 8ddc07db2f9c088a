package xmlmap

import "fmt"

const (
	defaultMaxDepth = 1000
	defaultIndent   = "  "
)

type options struct {
	maxDepth int
	indent   string
	prefix   string
}

func defaultOptions() options {
	return options{
		maxDepth: defaultMaxDepth,
		indent:   defaultIndent,
	}
}

func (o *options) apply(opts []Option) error {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// An Option configures Parse, Marshal, Decoder and Encoder. Options
// that do not apply to an operation are accepted and ignored, so one
// option list can serve both directions.
type Option func(*options) error

// MaxDepth returns an Option that sets the maximum element nesting
// depth for parsing. This guards against stack exhaustion on deeply
// nested documents. Parsing beyond the limit fails with ErrMaxDepth.
//
// The depth n must be a positive integer. The default is 1000.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("xmlmap: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent returns an Option that sets the string written once per
// nesting level when serializing. The default is two spaces.
func Indent(s string) Option {
	return func(o *options) error {
		o.indent = s
		return nil
	}
}

// Prefix returns an Option that sets a string written at the start of
// every serialized line. The default is empty.
func Prefix(s string) Option {
	return func(o *options) error {
		o.prefix = s
		return nil
	}
}
