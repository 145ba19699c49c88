package valuetree

// Native is an in-memory implementation of Tree backed by plain Go maps and
// slices. It is the reference value tree used by this module's own tests,
// and a template for embedders that already hold decoded values as
// map[string]interface{}-shaped data (JSON, YAML, etc.) before handing them
// to the codec.
type Native struct{}

// NewNative returns a Tree backed by Native values.
func NewNative() Native { return Native{} }

func (Native) NewRecord(fields int) RecordBuilder {
	return &nativeRecord{fields: make(map[string]Value, fields)}
}

func (Native) NewSeq(n int) SeqBuilder {
	return &nativeSeq{elems: make([]Value, 0, n)}
}

func (Native) NewBool(v bool) Value    { return nativeBool(v) }
func (Native) NewInt(v int64) Value    { return nativeInt(v) }
func (Native) NewFloat(v float64) Value { return nativeFloat(v) }
func (Native) NewBytes(v []byte) Value { return nativeBytes(v) }

type nativeAbsent struct{}

func (nativeAbsent) Kind() Kind      { return Absent }
func (nativeAbsent) Bool() bool      { return false }
func (nativeAbsent) Int() int64      { return 0 }
func (nativeAbsent) Float() float64  { return 0 }
func (nativeAbsent) Bytes() []byte   { return nil }

// AbsentValue is the sentinel Value returned for missing record fields.
var AbsentValue Value = nativeAbsent{}

type nativeBool bool

func (v nativeBool) Kind() Kind     { return KindBool }
func (v nativeBool) Bool() bool     { return bool(v) }
func (v nativeBool) Int() int64     { return 0 }
func (v nativeBool) Float() float64 { return 0 }
func (v nativeBool) Bytes() []byte  { return nil }

type nativeInt int64

func (v nativeInt) Kind() Kind     { return KindInt }
func (v nativeInt) Bool() bool     { return false }
func (v nativeInt) Int() int64     { return int64(v) }
func (v nativeInt) Float() float64 { return float64(v) }
func (v nativeInt) Bytes() []byte  { return nil }

type nativeFloat float64

func (v nativeFloat) Kind() Kind     { return KindFloat }
func (v nativeFloat) Bool() bool     { return false }
func (v nativeFloat) Int() int64     { return int64(v) }
func (v nativeFloat) Float() float64 { return float64(v) }
func (v nativeFloat) Bytes() []byte  { return nil }

type nativeBytes []byte

func (v nativeBytes) Kind() Kind     { return KindBytes }
func (v nativeBytes) Bool() bool     { return false }
func (v nativeBytes) Int() int64     { return 0 }
func (v nativeBytes) Float() float64 { return 0 }
func (v nativeBytes) Bytes() []byte  { return []byte(v) }

type nativeSeq struct {
	elems []Value
}

func (s *nativeSeq) Kind() Kind     { return KindSeq }
func (s *nativeSeq) Bool() bool     { return false }
func (s *nativeSeq) Int() int64     { return 0 }
func (s *nativeSeq) Float() float64 { return 0 }
func (s *nativeSeq) Bytes() []byte  { return nil }
func (s *nativeSeq) Len() int       { return len(s.elems) }
func (s *nativeSeq) Index(i int) Value {
	if i < 0 || i >= len(s.elems) {
		return AbsentValue
	}
	return s.elems[i]
}
func (s *nativeSeq) Append(v Value) { s.elems = append(s.elems, v) }

type nativeRecord struct {
	fields map[string]Value
}

func (r *nativeRecord) Kind() Kind     { return KindRecord }
func (r *nativeRecord) Bool() bool     { return false }
func (r *nativeRecord) Int() int64     { return 0 }
func (r *nativeRecord) Float() float64 { return 0 }
func (r *nativeRecord) Bytes() []byte  { return nil }
func (r *nativeRecord) Field(name []byte) Value {
	v, ok := r.fields[string(name)]
	if !ok {
		return AbsentValue
	}
	return v
}
func (r *nativeRecord) Set(name []byte, v Value) {
	r.fields[string(name)] = v
}
