package valuetree_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/schemawire/pto/valuetree"
)

func TestNativeRecordFieldAbsent(t *testing.T) {
	tree := valuetree.NewNative()
	rec := tree.NewRecord(0)

	td.Cmp(t, rec.Field([]byte("missing")).Kind(), valuetree.Absent)

	rec.Set([]byte("a"), tree.NewBool(true))
	td.CmpTrue(t, rec.Field([]byte("a")).Bool())
}

func TestNativeSeqAppendAndIndex(t *testing.T) {
	tree := valuetree.NewNative()
	seq := tree.NewSeq(2)
	seq.Append(tree.NewInt(1))
	seq.Append(tree.NewInt(2))

	td.Cmp(t, seq.Len(), 2)
	td.Cmp(t, seq.Index(0).Int(), int64(1))
	td.Cmp(t, seq.Index(1).Int(), int64(2))
	td.Cmp(t, seq.Index(2).Kind(), valuetree.Absent)
}
