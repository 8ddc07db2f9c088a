package xmlmap

import (
	"bytes"
	"strings"
)

var (
	cdataOpen  = []byte("<![CDATA[")
	cdataClose = []byte("]]>")
)

// parser scans a preprocessed document. It works over byte offsets
// into a single buffer; substrings are materialized only when a tag
// name or text span becomes part of the result.
type parser struct {
	text     []byte
	maxDepth int
}

// element is one matched <tag>...</tag> or <tag/> span. Elements live
// only on the recursion stack: the value is merged into the parent map
// and the struct is discarded.
type element struct {
	tag     string
	props   *Map
	text    string
	hasText bool
	next    int // offset just past the element's closing marker
}

// value returns what the element contributes to its parent map:
// coerced text for a leaf, otherwise its property map.
func (el *element) value() any {
	if el.hasText {
		return coerce(el.text)
	}
	return el.props
}

// parseDocument parses every root element in the text, merging them
// into a single map the same way repeated children merge. Parsing
// stops once only whitespace remains.
func (p *parser) parseDocument() (*Map, error) {
	if bytes.IndexByte(p.text, '<') < 0 {
		return nil, &ParseError{Err: ErrEmptyDocument, Offset: 0}
	}
	doc := NewMap()
	offset := 0
	for {
		el, err := p.parseElement(offset, 1)
		if err != nil {
			return nil, err
		}
		doc.Add(el.tag, el.value())
		offset = el.next
		if len(bytes.TrimSpace(p.text[offset:])) == 0 {
			return doc, nil
		}
	}
}

// parseElement consumes one element span starting at the first '<' at
// or after offset and returns the parsed element together with the
// offset of whatever follows it.
func (p *parser) parseElement(offset, depth int) (element, error) {
	var el element

	open := bytes.IndexByte(p.text[offset:], '<')
	if open < 0 {
		return el, &ParseError{Err: ErrElementOpenNotFound, Offset: offset}
	}
	open += offset
	if depth > p.maxDepth {
		return el, &ParseError{Err: ErrMaxDepth, Offset: open}
	}

	gt := bytes.IndexByte(p.text[open:], '>')
	if gt < 0 {
		return el, &ParseError{Err: ErrElementOpenUnterminated, Offset: open}
	}
	gt += open

	header := strings.TrimSpace(string(p.text[open+1 : gt]))
	if name, ok := strings.CutSuffix(header, "/"); ok {
		el.tag = strings.TrimSpace(name)
		el.props = NewMap()
		el.next = gt + 1
		return el, nil
	}
	el.tag = header

	contentStart := gt + 1
	closing := []byte("</" + el.tag + ">")

	cursor := contentStart
	var (
		cdata    []byte
		hasCData bool
		boundary int
	)
	for {
		// The closing marker is re-sought after every consumed child so
		// that a same-named nested child does not steal this element's
		// boundary. The first iteration also detects a missing marker
		// before any child is parsed.
		boundary = bytes.Index(p.text[cursor:], closing)
		if boundary < 0 {
			return el, &ParseError{Err: ErrElementCloseNotFound, Offset: contentStart}
		}
		boundary += cursor

		// The closing marker guarantees a '<' at or after the cursor.
		next := cursor + bytes.IndexByte(p.text[cursor:], '<')
		if next == boundary {
			break
		}

		if bytes.HasPrefix(p.text[next:], cdataOpen) {
			payload := next + len(cdataOpen)
			end := bytes.Index(p.text[payload:], cdataClose)
			if end < 0 {
				return el, &ParseError{Err: ErrCDataUnterminated, Offset: next}
			}
			cdata = append(cdata, p.text[payload:payload+end]...)
			hasCData = true
			cursor = payload + end + len(cdataClose)
			continue
		}

		child, err := p.parseElement(next, depth+1)
		if err != nil {
			return el, err
		}
		if el.props == nil {
			el.props = NewMap()
		}
		el.props.Add(child.tag, child.value())
		cursor = child.next
	}
	el.next = boundary + len(closing)

	// Child elements win over accumulated CDATA text; CDATA text wins
	// over the raw span, and is never trimmed.
	if el.props == nil {
		if hasCData {
			el.text = string(cdata)
		} else {
			el.text = strings.TrimSpace(string(p.text[contentStart:boundary]))
		}
		el.hasText = true
	}
	return el, nil
}
