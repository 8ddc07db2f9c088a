package xmlmap

import "bytes"

// preprocess removes comment and processing-instruction blocks before
// element parsing starts. Comments go first, then instructions. The
// input slice is never modified.
func preprocess(text []byte) ([]byte, error) {
	text, err := stripMarked(text, "<!--", "-->", ErrCommentUnterminated)
	if err != nil {
		return nil, err
	}
	return stripMarked(text, "<?", "?>", ErrMetadataUnterminated)
}

// stripMarked deletes every span delimited by the start and end
// markers, markers included. After each deletion the scan restarts
// from the beginning, so a marker formed by joining the text around a
// deleted span is caught too. A start marker with no matching end
// marker fails with kind at the marker's offset.
//
// The search is purely textual: a marker inside a CDATA payload is
// stripped like any other. Callers relying on such payloads must keep
// markers out of them.
func stripMarked(text []byte, start, end string, kind error) ([]byte, error) {
	i := bytes.Index(text, []byte(start))
	if i < 0 {
		return text, nil
	}
	buf := bytes.Clone(text)
	for i >= 0 {
		rest := buf[i+len(start):]
		j := bytes.Index(rest, []byte(end))
		if j < 0 {
			return nil, &ParseError{Err: kind, Offset: i}
		}
		buf = append(buf[:i], rest[j+len(end):]...)
		i = bytes.Index(buf, []byte(start))
	}
	return buf, nil
}
