package pto

import (
	"github.com/schemawire/pto/valuetree"
	"github.com/schemawire/pto/wire"
)

// Encode walks the protocol registered at id in reg against rec, in schema
// field order, producing the exact byte range the message occupies.
//
// Every top-level field of the protocol must be present in rec and match
// its declared type and array-ness; on any mismatch, encoding stops and
// returns a SchemaError, with no partial output.
func Encode(reg *Registry, id uint16, rec valuetree.Record) ([]byte, error) {
	protocol, err := reg.Lookup(id)
	if err != nil {
		reg.recordError("NoSuchPto")
		return nil, err
	}
	reg.metrics.EncodeCalled(id)

	buf := wire.NewBuffer()
	if err := encodeFields(reg, buf, protocol.Fields, rec, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeFields(reg *Registry, buf *wire.Buffer, fields []*Field, rec valuetree.Record, depth int) error {
	for _, f := range fields {
		val := rec.Field(f.Name)

		if f.Array {
			seq, ok := val.(valuetree.Seq)
			if !ok {
				return schemaErr(reg, &SchemaError{Kind: BadArrayType, Field: string(f.Name), Got: val.Kind().String()})
			}
			if seq.Len() > MaxLen {
				return schemaErr(reg, &SchemaError{Kind: BadArraySize, Field: string(f.Name)})
			}
			wire.WriteCount(buf, seq.Len())
			for i := 0; i < seq.Len(); i++ {
				if err := encodeElement(reg, buf, f, seq.Index(i), true, depth); err != nil {
					return err
				}
			}
			continue
		}

		if err := encodeElement(reg, buf, f, val, false, depth); err != nil {
			return err
		}
	}
	return nil
}

func encodeElement(reg *Registry, buf *wire.Buffer, f *Field, val valuetree.Value, array bool, depth int) error {
	switch f.Type {
	case Bool:
		if val.Kind() != valuetree.KindBool {
			return schemaErr(reg, &SchemaError{Kind: BadField, Field: string(f.Name), Array: array, Type: "boolean", Got: val.Kind().String()})
		}
		wire.WriteBool(buf, val.Bool())

	case Short:
		if val.Kind() != valuetree.KindInt {
			return schemaErr(reg, &SchemaError{Kind: BadField, Field: string(f.Name), Array: array, Type: "integer", Got: val.Kind().String()})
		}
		wire.WriteShort(buf, val.Int())

	case Int:
		if val.Kind() != valuetree.KindInt {
			return schemaErr(reg, &SchemaError{Kind: BadField, Field: string(f.Name), Array: array, Type: "integer", Got: val.Kind().String()})
		}
		if err := wire.WriteVarint7(buf, val.Int()); err != nil {
			return schemaErr(reg, &SchemaError{Kind: BadInt, Field: string(f.Name), Array: array, Value: val.Int()})
		}

	case Float:
		if val.Kind() != valuetree.KindFloat && val.Kind() != valuetree.KindInt {
			return schemaErr(reg, &SchemaError{Kind: BadField, Field: string(f.Name), Array: array, Type: "floating", Got: val.Kind().String()})
		}
		wire.WriteFloat32(buf, float32(coerceFloat(val)))

	case Double:
		if val.Kind() != valuetree.KindFloat && val.Kind() != valuetree.KindInt {
			return schemaErr(reg, &SchemaError{Kind: BadField, Field: string(f.Name), Array: array, Type: "floating", Got: val.Kind().String()})
		}
		wire.WriteFloat64(buf, coerceFloat(val))

	case String:
		if val.Kind() != valuetree.KindBytes {
			return schemaErr(reg, &SchemaError{Kind: BadField, Field: string(f.Name), Array: array, Type: "string", Got: val.Kind().String()})
		}
		if len(val.Bytes()) > MaxLen {
			return schemaErr(reg, &SchemaError{Kind: BadString, Field: string(f.Name), Size: len(val.Bytes())})
		}
		wire.WriteString(buf, val.Bytes())

	case Message:
		if val.Kind() != valuetree.KindRecord {
			return schemaErr(reg, &SchemaError{Kind: BadField, Field: string(f.Name), Array: array, Type: "table", Got: val.Kind().String()})
		}
		if depth+1 >= MaxDepth {
			return schemaErr(reg, &SchemaError{Kind: TooDepth, Depth: true})
		}
		if err := encodeFields(reg, buf, f.Children, val.(valuetree.Record), depth+1); err != nil {
			return err
		}

	default:
		return schemaErr(reg, &SchemaError{Kind: BadType, Field: string(f.Name), Value: int64(f.Type)})
	}
	return nil
}

func coerceFloat(v valuetree.Value) float64 {
	if v.Kind() == valuetree.KindInt {
		return float64(v.Int())
	}
	return v.Float()
}

func schemaErr(reg *Registry, err *SchemaError) *SchemaError {
	reg.recordError(err.Kind.errName())
	return err
}
