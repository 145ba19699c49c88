package pto

import (
	"github.com/schemawire/pto/valuetree"
)

// Registry maps u16 protocol ids to Protocols. It owns every Protocol
// (and, transitively, every Field) registered into it.
//
// Import mutates the Registry; Encode and Decode only read it. A Registry
// is not safe for concurrent Import calls, or for Import concurrent with
// Encode/Decode, but concurrent Encode/Decode calls against an
// already-imported Registry are safe (spec.md §5).
type Registry struct {
	protocols map[uint16]*Protocol
	metrics   MetricsRecorder
	log       Logger
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		protocols: make(map[uint16]*Protocol),
		metrics:   noopMetrics{},
		log:       defaultLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Import registers a protocol at id, replacing any existing registration
// (last-writer-wins, per spec.md §3). schema is a value-tree sequence of
// field records as described in spec.md §6: each element carries type
// (integer 0..6), array (bool), name (byte-string), and, only when
// type==Message, pto (a nested sequence of child field records).
//
// Import bounds recursion into nested message schemas at MaxDepth.
func (r *Registry) Import(id uint16, name string, schema valuetree.Seq) error {
	if id >= MaxID {
		return &SchemaError{Kind: NoSuchPto, ID: id}
	}

	fields, err := importFields(schema, 0)
	if err != nil {
		return err
	}

	r.protocols[id] = &Protocol{Name: name, Fields: fields}
	return nil
}

func importFields(schema valuetree.Seq, depth int) ([]*Field, error) {
	if depth >= MaxDepth {
		return nil, &SchemaError{Kind: TooDepth, Depth: true}
	}

	fields := make([]*Field, 0, schema.Len())
	for i := 0; i < schema.Len(); i++ {
		rec, ok := schema.Index(i).(valuetree.Record)
		if !ok {
			return nil, &SchemaError{Kind: BadType, Field: "<schema>", Value: -1}
		}

		field, err := importField(rec, depth)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func importField(rec valuetree.Record, depth int) (*Field, error) {
	nameVal := rec.Field([]byte("name"))
	name := append([]byte(nil), nameVal.Bytes()...)

	typeCode := rec.Field([]byte("type")).Int()
	array := rec.Field([]byte("array")).Bool()

	if typeCode < int64(Bool) || typeCode > int64(Message) {
		return nil, &SchemaError{Kind: BadType, Field: string(name), Value: typeCode}
	}
	typ := Type(typeCode)

	field := &Field{Name: name, Array: array, Type: typ}

	if typ == Message {
		childSchema, ok := rec.Field([]byte("pto")).(valuetree.Seq)
		if !ok {
			return nil, &SchemaError{Kind: BadType, Field: string(name), Value: typeCode}
		}
		children, err := importFields(childSchema, depth+1)
		if err != nil {
			return nil, err
		}
		field.Children = children
	}

	return field, nil
}

// Lookup returns the Protocol registered at id, or a NoSuchPto SchemaError
// if none is registered.
func (r *Registry) Lookup(id uint16) (*Protocol, error) {
	p, ok := r.protocols[id]
	if !ok {
		return nil, &SchemaError{Kind: NoSuchPto, ID: id}
	}
	return p, nil
}

// Release discards every registered Protocol, making them eligible for
// garbage collection. It is safe to call more than once, and safe to never
// call at all — a Registry with no remaining references is collected like
// any other Go value. It exists for embedders that want an explicit,
// symmetrical teardown call matching the source format's release()
// (spec.md §4.6).
func (r *Registry) Release() {
	if _, noop := r.metrics.(noopMetrics); !noop {
		l := warnCall(r.log)
		l.Warn().Msg("pto: Release called on a registry with metrics attached; metrics counters are not reset")
	}
	r.protocols = make(map[uint16]*Protocol)
}
