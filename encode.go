package xmlmap

import (
	"fmt"
	"io"
)

// Encoder writes documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the XML encoding of v to the stream. v must be a *Map
// or a map[string]any; see Marshal.
func (e *Encoder) Encode(v any) error {
	o := defaultOptions()
	if err := o.apply(e.opts); err != nil {
		return err
	}
	m, err := asMap(v)
	if err != nil {
		return err
	}
	f := newFormatter(e.w, &o)
	return f.format(m)
}

// asMap adapts a marshal input to the internal document form.
func asMap(v any) (*Map, error) {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return NewMap(), nil
		}
		return t, nil
	case map[string]any:
		return FromPlain(t), nil
	default:
		return nil, fmt.Errorf("xmlmap: cannot marshal value of type %T", v)
	}
}
