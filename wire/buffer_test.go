package wire_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/schemawire/pto/wire"
)

func TestBufferGrowsPastInline(t *testing.T) {
	b := wire.NewBuffer()
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i)
	}
	b.Write(payload)

	td.Cmp(t, b.Bytes(), payload)
	td.CmpLen(t, b.Bytes(), len(payload))
}

func TestBufferWriteBuffIsInPlace(t *testing.T) {
	b := wire.NewBuffer()
	dst := b.WriteBuff(3)
	dst[0], dst[1], dst[2] = 1, 2, 3

	td.Cmp(t, b.Bytes(), []byte{1, 2, 3})
}

func TestPrimitivesRoundTrip(t *testing.T) {
	b := wire.NewBuffer()
	wire.WriteBool(b, true)
	wire.WriteShort(b, -1)
	wire.WriteFloat32(b, 3.5)
	wire.WriteFloat64(b, -2.25)
	wire.WriteString(b, []byte("hi"))
	wire.WriteCount(b, 3)

	c := wire.NewCursor(b.Bytes())

	boolVal, err := wire.ReadBool(c)
	td.CmpNoError(t, err)
	td.Cmp(t, boolVal, true)

	shortVal, err := wire.ReadShort(c)
	td.CmpNoError(t, err)
	td.Cmp(t, shortVal, int64(-1))

	f32, err := wire.ReadFloat32(c)
	td.CmpNoError(t, err)
	td.Cmp(t, f32, float32(3.5))

	f64, err := wire.ReadFloat64(c)
	td.CmpNoError(t, err)
	td.Cmp(t, f64, -2.25)

	str, err := wire.ReadString(c)
	td.CmpNoError(t, err)
	td.Cmp(t, str, []byte("hi"))

	count, err := wire.ReadCount(c)
	td.CmpNoError(t, err)
	td.Cmp(t, count, 3)

	td.CmpTrue(t, c.Done())
}
