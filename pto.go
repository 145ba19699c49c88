// Package pto implements a schema-driven binary serialization codec.
//
// Schemas describe named protocols, each an ordered list of typed fields
// (including nested message types and arrays), registered into a Registry
// by a u16 id. Encode walks a Protocol against a valuetree.Record,
// producing a compact, self-delimiting byte sequence with no type tags on
// the wire — the schema alone determines layout. Decode walks the same
// Protocol against those bytes, rebuilding a record through a
// valuetree.Tree.
//
// The codec never names a host value representation directly; see the
// valuetree package for the interface it reads input from and builds
// output into.
package pto
