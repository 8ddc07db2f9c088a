package xmlmap

import (
	"fmt"
	"io"
)

// Decoder reads and parses documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder may buffer data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
//
// Functional options can be provided to configure decoding, such as
// setting a maximum nesting depth with the MaxDepth option.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the remainder of its input and parses it as a single
// document. See the documentation for Parse for details of the dialect
// and the errors returned.
//
// Note: this is a non-streaming implementation. It reads the entire
// reader into memory before parsing.
func (d *Decoder) Decode() (*Map, error) {
	if d.r == nil {
		return nil, fmt.Errorf("xmlmap: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(data, d.opts...)
}
