// Package valuetree defines the abstract value model the pto codec reads
// structured input from and builds structured output into.
//
// The codec core never names a host primitive directly (no Lua stack, no Go
// struct reflection); it only calls through this interface. A host binding
// implements Tree once — see Native in this package for an in-memory
// implementation. valuetree/yamltree loads YAML documents into Native values
// and does not implement Tree itself.
package valuetree

// Kind classifies a Value. Absent is returned by Record.Field for a missing
// key; the codec's primitive encoders reject it with a BadField error.
type Kind int

// Kind values, closed enumeration.
const (
	Absent Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBytes
	KindSeq
	KindRecord
)

// String implements Stringer for diagnostic messages.
func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBytes:
		return "string"
	case KindSeq:
		return "array"
	case KindRecord:
		return "table"
	default:
		return "unknown"
	}
}

// Value is a single node of a value tree: a boolean, integer, floating
// point, byte-string, ordered sequence, or keyed record.
//
// The primitive accessors (Bool, Int, Float, Bytes) are only meaningful
// when Kind() returns the matching kind; callers must check Kind() first.
type Value interface {
	Kind() Kind
	Bool() bool
	Int() int64
	Float() float64
	Bytes() []byte
}

// Seq is an ordered sequence of homogeneous Values.
//
// Index is 0-indexed internally; any diagnostic message that surfaces an
// element position to a caller adds 1, per the source host's 1-indexed
// convention (spec.md §9, "Array indexing").
type Seq interface {
	Value
	Len() int
	Index(i int) Value
}

// Record is a keyed collection of named Values.
type Record interface {
	Value
	// Field returns the child value under name, or a Value with
	// Kind() == Absent if no such field exists.
	Field(name []byte) Value
}

// RecordBuilder constructs a Record on the write (decode output) side.
type RecordBuilder interface {
	Record
	// Set inserts v under name. Overwrites any existing value under name.
	Set(name []byte, v Value)
}

// SeqBuilder constructs a Seq on the write (decode output) side.
type SeqBuilder interface {
	Seq
	// Append adds v to the end of the sequence.
	Append(v Value)
}

// Tree is a factory for constructing output values during decode.
//
// A Tree implementation is the full "value tree interface" a host binding
// must provide: read access comes from Record/Seq/Value above, write access
// comes from here.
type Tree interface {
	// NewRecord returns an empty RecordBuilder. fields is a hint for the
	// expected field count; implementations may ignore it.
	NewRecord(fields int) RecordBuilder
	// NewSeq returns an empty SeqBuilder sized for n elements. n is a hint;
	// implementations may ignore it.
	NewSeq(n int) SeqBuilder
	NewBool(v bool) Value
	NewInt(v int64) Value
	NewFloat(v float64) Value
	NewBytes(v []byte) Value
}
