package xmlmap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. The map becomes a YAML
// mapping node with keys in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var key, val yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, err
		}
		if err := val.Encode(m.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The order of keys in the
// YAML mapping becomes the map's insertion order; a duplicated key
// keeps its first position and last value. Integer scalars are
// normalized to float64 to match the values Parse produces.
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	node := resolveYAMLAlias(value)
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = resolveYAMLAlias(node.Content[0])
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("xmlmap: cannot unmarshal YAML %s into Map", node.Tag)
	}
	dec := NewMap()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := resolveYAMLAlias(node.Content[i]).Decode(&key); err != nil {
			return err
		}
		v, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return err
		}
		dec.Set(key, v)
	}
	*m = *dec
	return nil
}

// resolveYAMLAlias follows an alias node to its anchor target.
func resolveYAMLAlias(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}

func decodeYAMLValue(node *yaml.Node) (any, error) {
	node = resolveYAMLAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		sub := NewMap()
		if err := sub.UnmarshalYAML(node); err != nil {
			return nil, err
		}
		return sub, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := decodeYAMLValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return fromPlainValue(v), nil
	default:
		return nil, fmt.Errorf("xmlmap: unsupported YAML node kind %d", node.Kind)
	}
}
