package wire_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schemawire/pto/wire"
)

func TestVarint7RoundTrip(t *testing.T) {
	testCases := []int64{
		0, 1, -1, 2, -2, 255, 256, -255, -256,
		300, -300,
		1<<16 - 1, -(1<<16 - 1),
		1 << 16, -(1 << 16),
		1<<32 - 1, -(1<<32 - 1),
		wire.MaxVarint7, wire.MinVarint7,
	}

	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			b := wire.NewBuffer()
			require.NoError(t, wire.WriteVarint7(b, tC))

			c := wire.NewCursor(b.Bytes())
			got, err := wire.ReadVarint7(c)
			require.NoError(t, err)
			require.Equal(t, tC, got)
			require.True(t, c.Done())
		})
	}
}

func TestVarint7Shape(t *testing.T) {
	b := wire.NewBuffer()
	require.NoError(t, wire.WriteVarint7(b, 0))
	require.Equal(t, []byte{0x00}, b.Bytes())

	// 300: length 2, sign 1 -> tag (2<<1)|1 = 0x05, bytes 2C 01
	b = wire.NewBuffer()
	require.NoError(t, wire.WriteVarint7(b, 300))
	require.Equal(t, []byte{0x05, 0x2C, 0x01}, b.Bytes())

	// -1: length 1, sign 0 -> tag (1<<1)|0 = 0x02, byte 01
	b = wire.NewBuffer()
	require.NoError(t, wire.WriteVarint7(b, -1))
	require.Equal(t, []byte{0x02, 0x01}, b.Bytes())

	// +1: length 1, sign 1 -> tag 0x03, byte 01
	b = wire.NewBuffer()
	require.NoError(t, wire.WriteVarint7(b, 1))
	require.Equal(t, []byte{0x03, 0x01}, b.Bytes())

	// +256: length 2, sign 1 -> tag 0x05, bytes 00 01
	b = wire.NewBuffer()
	require.NoError(t, wire.WriteVarint7(b, 256))
	require.Equal(t, []byte{0x05, 0x00, 0x01}, b.Bytes())
}

func TestVarint7OutOfRange(t *testing.T) {
	b := wire.NewBuffer()
	err := wire.WriteVarint7(b, wire.MaxVarint7+1)
	require.ErrorIs(t, err, wire.ErrVarintRange)

	b = wire.NewBuffer()
	err = wire.WriteVarint7(b, wire.MinVarint7-1)
	require.ErrorIs(t, err, wire.ErrVarintRange)
}

func TestVarint7ShortRead(t *testing.T) {
	b := wire.NewBuffer()
	require.NoError(t, wire.WriteVarint7(b, 300))
	truncated := b.Bytes()[:len(b.Bytes())-1]

	c := wire.NewCursor(truncated)
	_, err := wire.ReadVarint7(c)
	require.ErrorIs(t, err, wire.ErrShortBuffer)
}
