package xmlmap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements json.Marshaler. Keys are written in insertion
// order. Nested maps and arrays marshal recursively, so a parsed
// document converts to JSON without losing its ordering.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. The order of keys in the
// JSON object becomes the map's insertion order; a duplicated key
// keeps its first position and last value. JSON numbers decode as
// float64 and objects as *Map. Booleans and nulls decode as bool and
// nil, which sit outside the parser's value contract and serialize to
// XML best-effort only.
func (m *Map) UnmarshalJSON(data []byte) error {
	d := json.NewDecoder(bytes.NewReader(data))
	tok, err := d.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("xmlmap: cannot unmarshal JSON %v into Map", tok)
	}
	dec, err := decodeJSONObject(d)
	if err != nil {
		return err
	}
	*m = *dec
	return nil
}

// decodeJSONObject reads the members of an object whose opening '{'
// has already been consumed, including the closing '}'.
func decodeJSONObject(d *json.Decoder) (*Map, error) {
	m := NewMap()
	for d.More() {
		keyTok, err := d.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("xmlmap: unexpected JSON object key %v", keyTok)
		}
		valTok, err := d.Token()
		if err != nil {
			return nil, err
		}
		v, err := decodeJSONValue(d, valTok)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	if _, err := d.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeJSONArray(d *json.Decoder) ([]any, error) {
	arr := []any{}
	for d.More() {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		v, err := decodeJSONValue(d, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := d.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func decodeJSONValue(d *json.Decoder, tok json.Token) (any, error) {
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeJSONObject(d)
		case '[':
			return decodeJSONArray(d)
		}
		return nil, fmt.Errorf("xmlmap: unexpected JSON delimiter %v", delim)
	}
	return tok, nil
}
