package yamltree_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/schemawire/pto/valuetree"
	"github.com/schemawire/pto/valuetree/yamltree"
)

func TestParseScalarsAndNesting(t *testing.T) {
	doc := []byte(`
a: true
b: -1
c: 300
d: hi
inner:
  - x: 1
    y: 2
  - x: 3
    y: 4
`)

	rec, err := yamltree.Parse(doc)
	td.CmpNoError(t, err)

	td.CmpTrue(t, rec.Field([]byte("a")).Bool())
	td.Cmp(t, rec.Field([]byte("b")).Int(), int64(-1))
	td.Cmp(t, rec.Field([]byte("c")).Int(), int64(300))
	td.Cmp(t, rec.Field([]byte("d")).Bytes(), []byte("hi"))

	inner, ok := rec.Field([]byte("inner")).(valuetree.Seq)
	td.CmpTrue(t, ok)
	td.Cmp(t, inner.Len(), 2)

	first, ok := inner.Index(0).(valuetree.Record)
	td.CmpTrue(t, ok)
	td.Cmp(t, first.Field([]byte("x")).Int(), int64(1))
}
