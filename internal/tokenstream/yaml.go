package tokenstream

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

var errNotSequence = errors.New("yaml: token stream must be a sequence")

// yamlEntries loads a YAML fixture as loose entries. Scalars keep the text
// they were written with, so `text: 007` stays "007" rather than becoming 7.
func yamlEntries(b []byte) ([]any, error) {
	f, err := parser.ParseBytes(b, 0)
	if err != nil {
		return nil, fmt.Errorf("parser.ParseBytes: %w", err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return nil, nil
	}
	if len(f.Docs) > 1 {
		return nil, errors.New("yaml: more than one document")
	}

	body := f.Docs[0].Body
	if tag, ok := body.(*ast.TagNode); ok {
		body = tag.Value
	}
	seq, ok := body.(*ast.SequenceNode)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", errNotSequence, body.Type())
	}

	entries := make([]any, 0, len(seq.Values))
	for i, node := range seq.Values {
		v, err := yamlValue(node)
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}
		entries = append(entries, v)
	}
	return entries, nil
}

func yamlValue(node ast.Node) (any, error) {
	switch n := node.(type) {
	case nil, *ast.NullNode:
		return nil, nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case *ast.TagNode:
		return yamlValue(n.Value)
	case *ast.AnchorNode:
		return yamlValue(n.Value)
	case *ast.AliasNode:
		return nil, fmt.Errorf("%w: aliases are not supported", ErrInvalidEntry)
	case *ast.MappingValueNode:
		m := map[string]any{}
		if err := setYAMLPair(m, n); err != nil {
			return nil, err
		}
		return m, nil
	case *ast.MappingNode:
		m := make(map[string]any, len(n.Values))
		for _, pair := range n.Values {
			if err := setYAMLPair(m, pair); err != nil {
				return nil, err
			}
		}
		return m, nil
	case *ast.SequenceNode:
		return nil, fmt.Errorf("%w: nested sequence", ErrInvalidEntry)
	default:
		// integers, floats, booleans, inf and nan: the source text as written
		return n.GetToken().Value, nil
	}
}

func setYAMLPair(m map[string]any, pair *ast.MappingValueNode) error {
	key := pair.Key
	if k, ok := key.(*ast.MappingKeyNode); ok {
		key = k.Value
	}
	name, err := yamlValue(key)
	if err != nil {
		return err
	}
	s, ok := name.(string)
	if !ok {
		return fmt.Errorf("%w: mapping key %v", ErrInvalidEntry, name)
	}
	if _, dup := m[s]; dup {
		return fmt.Errorf("%w: duplicate key %q", ErrInvalidEntry, s)
	}

	v, err := yamlValue(pair.Value)
	if err != nil {
		return err
	}
	m[s] = v
	return nil
}
