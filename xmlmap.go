package xmlmap

import "bytes"

// Marshal returns the XML encoding of v.
//
// v must be a *Map, usually one produced by Parse, or a plain
// map[string]any, which is converted with FromPlain first. Values
// inside v follow the Map contract: string, float64, *Map and []any
// serialize exactly; anything else is written best-effort and may not
// parse back.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse parses the XML-encoded data and returns the document as a Map.
//
// Comments and processing instructions are stripped first. Every root
// element is then parsed and merged into one map, so a document may
// have any number of roots; repeated tags become arrays. Text content
// that looks like a plain decimal or exponential number becomes a
// float64.
//
// Parse reads a restricted dialect: attributes are not interpreted,
// text mixed with child elements is dropped, and entities are not
// decoded. CDATA payloads are copied verbatim.
//
// Failures are reported as a *ParseError wrapping one of the Err*
// kinds together with the byte offset of the offending construct.
func Parse(data []byte, opts ...Option) (*Map, error) {
	o := defaultOptions()
	if err := o.apply(opts); err != nil {
		return nil, err
	}
	text, err := preprocess(data)
	if err != nil {
		return nil, err
	}
	p := &parser{text: text, maxDepth: o.maxDepth}
	return p.parseDocument()
}
