package pto_test

import (
	"fmt"

	"github.com/schemawire/pto"
	"github.com/schemawire/pto/valuetree"
)

// Registers a two-field protocol, encodes a record, and decodes the result
// back out through the same value tree.
func Example() {
	reg := pto.New()
	if err := reg.Import(1, "Person", buildSchema([]schemaField{
		{name: "name", typ: pto.String},
		{name: "age", typ: pto.Int},
	})); err != nil {
		fmt.Println(err)
		return
	}

	tree := valuetree.NewNative()
	person := tree.NewRecord(2)
	person.Set([]byte("name"), tree.NewBytes([]byte("Ada")))
	person.Set([]byte("age"), tree.NewInt(30))

	buf, err := pto.Encode(reg, 1, person)
	if err != nil {
		fmt.Println(err)
		return
	}

	decoded, err := pto.Decode(reg, 1, buf, tree)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s is %d\n", decoded.Field([]byte("name")).Bytes(), decoded.Field([]byte("age")).Int())
	// Output: Ada is 30
}
