// Package cli implements the xmlmap command line tool.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/test47-web/go-xmlmap"
)

// Input and output format names accepted by the convert command. JSONC
// is input-only: comments cannot be reconstructed on the way out.
const (
	FormatXML   = "xml"
	FormatJSON  = "json"
	FormatJSONC = "jsonc"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// ConvertOptions configures one conversion.
type ConvertOptions struct {
	From     string // input format, one of the Format* names
	To       string // output format, any Format* name except jsonc
	Indent   string // indent step for xml and json output
	Prefix   string // line prefix for xml and json output
	MaxDepth int    // xml nesting limit; 0 keeps the library default
}

// Convert decodes in according to opts.From and encodes the resulting
// document according to opts.To. It touches no files, so callers own
// all I/O.
func Convert(in []byte, opts ConvertOptions) ([]byte, error) {
	m, err := decodeInput(in, opts)
	if err != nil {
		return nil, err
	}
	return encodeOutput(m, opts)
}

func decodeInput(in []byte, opts ConvertOptions) (*xmlmap.Map, error) {
	switch opts.From {
	case FormatXML:
		var xopts []xmlmap.Option
		if opts.MaxDepth > 0 {
			xopts = append(xopts, xmlmap.MaxDepth(opts.MaxDepth))
		}
		m, err := xmlmap.Parse(in, xopts...)
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}
		return m, nil
	case FormatJSON:
		m := xmlmap.NewMap()
		if err := json.Unmarshal(bytes.TrimSpace(in), m); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return m, nil
	case FormatJSONC:
		v, err := hujson.Parse(bytes.TrimSpace(in))
		if err != nil {
			return nil, fmt.Errorf("parse jsonc: %w", err)
		}
		v.Standardize()
		m := xmlmap.NewMap()
		if err := json.Unmarshal(v.Pack(), m); err != nil {
			return nil, fmt.Errorf("parse jsonc: %w", err)
		}
		return m, nil
	case FormatYAML:
		m := xmlmap.NewMap()
		if err := yaml.Unmarshal(in, m); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return m, nil
	case FormatTOML:
		var plain map[string]any
		if err := toml.Unmarshal(in, &plain); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		return xmlmap.FromPlain(plain), nil
	default:
		return nil, fmt.Errorf("unsupported input format %q", opts.From)
	}
}

func encodeOutput(m *xmlmap.Map, opts ConvertOptions) ([]byte, error) {
	switch opts.To {
	case FormatXML:
		out, err := xmlmap.Marshal(m, xmlmap.Indent(opts.Indent), xmlmap.Prefix(opts.Prefix))
		if err != nil {
			return nil, fmt.Errorf("encode xml: %w", err)
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(m, opts.Prefix, opts.Indent)
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return out, nil
	case FormatTOML:
		out, err := toml.Marshal(m.Plain())
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", opts.To)
	}
}
