package xmlmap

import (
	"errors"
	"fmt"
)

// Failure kinds reported by Parse. They are wrapped in a *ParseError
// carrying the byte offset, so tests and callers can match them with
// errors.Is.
var (
	// ErrEmptyDocument means no element was found in the document.
	ErrEmptyDocument = errors.New("no element found")

	// ErrElementOpenNotFound means an element was expected but no
	// opening marker was found.
	ErrElementOpenNotFound = errors.New("element opening marker not found")

	// ErrElementOpenUnterminated means an opening marker never reached
	// its closing '>'.
	ErrElementOpenUnterminated = errors.New("unterminated element opening marker")

	// ErrElementCloseNotFound means an opened element has no matching
	// closing marker.
	ErrElementCloseNotFound = errors.New("element closing marker not found")

	// ErrCDataUnterminated means a CDATA section never reached "]]>".
	ErrCDataUnterminated = errors.New("unterminated CDATA section")

	// ErrCommentUnterminated means a comment never reached "-->".
	ErrCommentUnterminated = errors.New("unterminated comment")

	// ErrMetadataUnterminated means a processing instruction or
	// declaration never reached "?>".
	ErrMetadataUnterminated = errors.New("unterminated processing instruction")

	// ErrMaxDepth means element nesting exceeded the configured limit.
	ErrMaxDepth = errors.New("reached max recursion depth")
)

// ParseError records a parse failure and the byte offset at which it
// was detected. The offset refers to the text being scanned when the
// failure occurred: element errors point into the document after
// comment and instruction removal, so offsets past a removed block are
// smaller than in the original input.
type ParseError struct {
	Err    error // one of the Err* failure kinds
	Offset int   // byte offset of the offending construct
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xmlmap: %s at offset %d", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }
