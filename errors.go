package pto

import "fmt"

// DataErrorKind classifies a DataError: something about the wire bytes
// themselves, rather than the schema or the value tree, is wrong.
type DataErrorKind int

const (
	// BadDecode is raised when a primitive read finds fewer bytes remaining
	// in the decode buffer than it needs.
	BadDecode DataErrorKind = iota
	// Trailing is raised when decoding a protocol's top-level fields leaves
	// unconsumed bytes in the input buffer.
	Trailing
)

// DataError reports a problem with the bytes being decoded: the caller
// should stop trusting this input, the way the teacher lineage's IOError
// signals "stop using this io.Reader/io.Writer".
type DataError struct {
	Kind     DataErrorKind
	Protocol string // set for Trailing
	Err      error  // wrapped cause, set for BadDecode
}

func (k DataErrorKind) errName() string {
	switch k {
	case Trailing:
		return "Trailing"
	default:
		return "BadDecode"
	}
}

func (e *DataError) Error() string {
	switch e.Kind {
	case Trailing:
		return fmt.Sprintf("decode protocol:%s error", e.Protocol)
	default:
		return "invalid message"
	}
}

// Unwrap implements errors.Unwrap.
func (e *DataError) Unwrap() error { return e.Err }

// SchemaErrorKind classifies a SchemaError: the schema or the value tree
// being encoded/decoded against it is wrong in some way.
type SchemaErrorKind int

const (
	// BadArrayType is raised when an array-typed field is given a value
	// whose Kind() is not KindSeq.
	BadArrayType SchemaErrorKind = iota
	// BadArraySize is raised when an array's length exceeds 0xFFFF.
	BadArraySize
	// BadField is raised when a primitive field's value has the wrong Kind.
	BadField
	// BadInt is raised when an Int field's value falls outside
	// [-(2^56-1), 2^56-1].
	BadInt
	// BadString is raised when a String field's byte length exceeds 0xFFFF.
	BadString
	// BadType is raised when a Field carries a type code outside the
	// closed enumeration; this indicates a malformed schema, not bad input.
	BadType
	// TooDepth is raised when recursion (through Message fields, or while
	// importing a schema) exceeds MaxDepth.
	TooDepth
	// NoSuchPto is raised when Encode/Decode is given an id with no
	// registered Protocol.
	NoSuchPto
)

// SchemaError reports a problem with how a value tree is being used against
// a schema: the caller should stop using the value tree this way, the way
// the teacher lineage's Error signals "stop using this Encodable this way".
type SchemaError struct {
	Kind  SchemaErrorKind
	Field string
	Array bool
	Type  string
	Got   string // the mismatched value tree Kind, as text
	Value int64
	Size  int
	Depth bool // true for encode-side and schema-import TooDepth, false for decode-side
	ID    uint16
}

func (k SchemaErrorKind) errName() string {
	switch k {
	case BadArrayType:
		return "BadArrayType"
	case BadArraySize:
		return "BadArraySize"
	case BadField:
		return "BadField"
	case BadInt:
		return "BadInt"
	case BadString:
		return "BadString"
	case BadType:
		return "BadType"
	case TooDepth:
		return "TooDepth"
	case NoSuchPto:
		return "NoSuchPto"
	default:
		return "Unknown"
	}
}

func (e *SchemaError) Error() string {
	member := ""
	if e.Array {
		member = " array member"
	}

	switch e.Kind {
	case BadArrayType:
		return fmt.Sprintf("field:%s expect table, not %s", e.Field, e.Got)
	case BadArraySize:
		return fmt.Sprintf("field:%s array size more than 0xffff", e.Field)
	case BadField:
		return fmt.Sprintf("field:%s%s expect %s, not %s", e.Field, member, e.Type, e.Got)
	case BadInt:
		return fmt.Sprintf("field:%s%s int out of range, %d", e.Field, member, e.Value)
	case BadString:
		return fmt.Sprintf("field:%s string size more than 0xffff:%d", e.Field, e.Size)
	case BadType:
		return fmt.Sprintf("unknown field:%s, type:%d", e.Field, e.Value)
	case TooDepth:
		if e.Depth {
			return "pto encode too depth"
		}
		return "pto decode too depth"
	case NoSuchPto:
		return fmt.Sprintf("no such pto:%d", e.ID)
	default:
		return "schema error"
	}
}
