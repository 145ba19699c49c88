package pto

import (
	"errors"

	"github.com/schemawire/pto/valuetree"
	"github.com/schemawire/pto/wire"
)

// Decode walks the protocol registered at id in reg against buf, in schema
// field order, producing a record built through tree.
//
// After decoding every top-level field, the cursor must exactly exhaust
// buf; any residual bytes are a Trailing DataError. Short reads anywhere
// during decode are a BadDecode DataError.
func Decode(reg *Registry, id uint16, buf []byte, tree valuetree.Tree) (valuetree.Record, error) {
	protocol, err := reg.Lookup(id)
	if err != nil {
		reg.recordError("NoSuchPto")
		return nil, err
	}
	reg.metrics.DecodeCalled(id)

	cursor := wire.NewCursor(buf)
	rec := tree.NewRecord(len(protocol.Fields))
	if err := decodeFields(reg, cursor, protocol.Fields, rec, tree, 0); err != nil {
		return nil, err
	}

	if !cursor.Done() {
		err := &DataError{Kind: Trailing, Protocol: protocol.Name}
		reg.recordError(err.Kind.errName())
		return nil, err
	}

	return rec, nil
}

func decodeFields(reg *Registry, cursor *wire.Cursor, fields []*Field, rec valuetree.RecordBuilder, tree valuetree.Tree, depth int) error {
	for _, f := range fields {
		if f.Array {
			count, err := wire.ReadCount(cursor)
			if err != nil {
				return dataErr(reg, err)
			}
			seq := tree.NewSeq(count)
			for i := 0; i < count; i++ {
				elem, err := decodeElement(reg, cursor, f, tree, depth)
				if err != nil {
					return err
				}
				seq.Append(elem)
			}
			rec.Set(f.Name, seq)
			continue
		}

		elem, err := decodeElement(reg, cursor, f, tree, depth)
		if err != nil {
			return err
		}
		rec.Set(f.Name, elem)
	}
	return nil
}

func decodeElement(reg *Registry, cursor *wire.Cursor, f *Field, tree valuetree.Tree, depth int) (valuetree.Value, error) {
	switch f.Type {
	case Bool:
		v, err := wire.ReadBool(cursor)
		if err != nil {
			return nil, dataErr(reg, err)
		}
		return tree.NewBool(v), nil

	case Short:
		v, err := wire.ReadShort(cursor)
		if err != nil {
			return nil, dataErr(reg, err)
		}
		return tree.NewInt(v), nil

	case Int:
		v, err := wire.ReadVarint7(cursor)
		if err != nil {
			return nil, dataErr(reg, err)
		}
		return tree.NewInt(v), nil

	case Float:
		v, err := wire.ReadFloat32(cursor)
		if err != nil {
			return nil, dataErr(reg, err)
		}
		return tree.NewFloat(float64(v)), nil

	case Double:
		v, err := wire.ReadFloat64(cursor)
		if err != nil {
			return nil, dataErr(reg, err)
		}
		return tree.NewFloat(v), nil

	case String:
		v, err := wire.ReadString(cursor)
		if err != nil {
			return nil, dataErr(reg, err)
		}
		return tree.NewBytes(append([]byte(nil), v...)), nil

	case Message:
		if depth+1 >= MaxDepth {
			err := &SchemaError{Kind: TooDepth, Depth: false}
			reg.recordError(err.Kind.errName())
			return nil, err
		}
		child := tree.NewRecord(len(f.Children))
		if err := decodeFields(reg, cursor, f.Children, child, tree, depth+1); err != nil {
			return nil, err
		}
		return child, nil

	default:
		err := &SchemaError{Kind: BadType, Field: string(f.Name), Value: int64(f.Type)}
		reg.recordError(err.Kind.errName())
		return nil, err
	}
}

func dataErr(reg *Registry, cause error) error {
	if !errors.Is(cause, wire.ErrShortBuffer) {
		// wire only ever returns ErrShortBuffer; guard against future additions.
		l := warnCall(reg.log)
		l.Warn().Err(cause).Msg("pto: decode read failed with an unexpected error")
	}
	err := &DataError{Kind: BadDecode, Err: cause}
	reg.recordError(err.Kind.errName())
	return err
}
