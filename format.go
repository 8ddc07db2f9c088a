package xmlmap

import (
	"fmt"
	"io"
	"strconv"
)

// formatter writes a document tree to an output stream as indented
// XML text.
type formatter struct {
	w      io.Writer
	indent string
	prefix string
	wrote  bool
}

// newFormatter returns a new formatter that writes to w.
func newFormatter(w io.Writer, opts *options) *formatter {
	return &formatter{w: w, indent: opts.indent, prefix: opts.prefix}
}

// format writes the XML representation of m to the writer. Entries are
// written in insertion order, one element per line, with no trailing
// newline. No text is escaped: values containing '<', '&' or "]]>"
// produce output that does not parse back.
func (f *formatter) format(m *Map) error {
	return f.writeMap(m, 0)
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

// openLine starts a new output line at the given depth. The first line
// of the document is not preceded by a newline.
func (f *formatter) openLine(depth int) error {
	if f.wrote {
		if err := f.write("\n"); err != nil {
			return err
		}
	}
	f.wrote = true
	if f.prefix != "" {
		if err := f.write(f.prefix); err != nil {
			return err
		}
	}
	if f.indent == "" {
		return nil
	}
	for i := 0; i < depth; i++ {
		if err := f.write(f.indent); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeMap(m *Map, depth int) error {
	for _, k := range m.keys {
		if err := f.writeProperty(k, m.values[k], depth); err != nil {
			return err
		}
	}
	return nil
}

// writeProperty writes one tag/value entry. Arrays flatten into one
// element per entry at the same depth. Values outside the parser's
// contract degrade to their printed form rather than failing.
func (f *formatter) writeProperty(tag string, v any, depth int) error {
	switch t := v.(type) {
	case []any:
		for _, e := range t {
			if err := f.writeProperty(tag, e, depth); err != nil {
				return err
			}
		}
		return nil
	case *Map:
		return f.writeNested(tag, t, depth)
	case map[string]any:
		return f.writeNested(tag, FromPlain(t), depth)
	default:
		if err := f.openLine(depth); err != nil {
			return err
		}
		return f.write("<" + tag + ">" + scalarText(v) + "</" + tag + ">")
	}
}

func (f *formatter) writeNested(tag string, m *Map, depth int) error {
	if err := f.openLine(depth); err != nil {
		return err
	}
	if m == nil || m.Len() == 0 {
		return f.write("<" + tag + "/>")
	}
	if err := f.write("<" + tag + ">"); err != nil {
		return err
	}
	if err := f.writeMap(m, depth+1); err != nil {
		return err
	}
	if err := f.openLine(depth); err != nil {
		return err
	}
	return f.write("</" + tag + ">")
}

// scalarText renders a leaf value. Numbers use plain decimal notation
// so they coerce back to the same value when reparsed.
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
