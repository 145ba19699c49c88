// Package yamltree loads decoded YAML documents (gopkg.in/yaml.v3) into
// valuetree values, so round-trip and schema-import fixtures for the pto
// codec can be authored as plain YAML instead of Go literals.
//
// It is a read-only loader: Parse builds its result out of valuetree.Native
// records, sequences and scalars. The package does not provide a
// valuetree.Tree of its own, so Decode output is built through another Tree
// such as valuetree.Native.
package yamltree

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/schemawire/pto/valuetree"
)

// Parse decodes a YAML document into a valuetree.Record.
//
// The document's root must be a mapping; scalars become KindBool, KindInt,
// KindFloat, or KindBytes values, sequences become KindSeq, and nested
// mappings become KindRecord, matching the shapes a pto schema expects for
// Message fields and their arrays.
func Parse(doc []byte) (valuetree.Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("yamltree: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("yamltree: empty document")
	}

	v, err := fromNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	rec, ok := v.(valuetree.Record)
	if !ok {
		return nil, fmt.Errorf("yamltree: document root must be a mapping")
	}
	return rec, nil
}

func fromNode(n *yaml.Node) (valuetree.Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		rec := valuetree.NewNative().NewRecord(len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			val, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			rec.Set([]byte(key), val)
		}
		return rec, nil

	case yaml.SequenceNode:
		seq := valuetree.NewNative().NewSeq(len(n.Content))
		for _, c := range n.Content {
			val, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			seq.Append(val)
		}
		return seq, nil

	case yaml.ScalarNode:
		return scalarFromNode(n)

	default:
		return nil, fmt.Errorf("yamltree: unsupported node kind %v", n.Kind)
	}
}

func scalarFromNode(n *yaml.Node) (valuetree.Value, error) {
	tree := valuetree.NewNative()
	switch n.Tag {
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return tree.NewBool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, err
		}
		return tree.NewInt(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return tree.NewFloat(f), nil
	default:
		return tree.NewBytes([]byte(n.Value)), nil
	}
}
