package wire

import "errors"

// MaxVarint7 and MinVarint7 bound the range varint7 can represent:
// +/-(2^56 - 1). One more bit of magnitude is reserved for the sign,
// mirroring the source format's MAX_INT constant.
const (
	MaxVarint7 = int64(1)<<56 - 1
	MinVarint7 = -MaxVarint7
)

// ErrVarintRange is returned by WriteVarint7 when the value falls outside
// [MinVarint7, MaxVarint7]; the pto package wraps it into a BadInt SchemaError.
var ErrVarintRange = errors.New("int out of range")

// WriteVarint7 appends the varint7 encoding of n to b.
//
// Zero is a single zero byte. Otherwise the tag byte is (length<<1)|sign,
// where length in [1,7] is the minimum number of little-endian bytes needed
// to hold |n|, and sign is 1 for positive values, 0 for negative. The tag
// byte is followed by length bytes of |n|, little-endian.
func WriteVarint7(b *Buffer, n int64) error {
	if n == 0 {
		b.WriteByte(0)
		return nil
	}

	sign := byte(1)
	mag := uint64(n)
	if n < 0 {
		sign = 0
		mag = uint64(-n)
	}
	if mag > uint64(MaxVarint7) {
		return ErrVarintRange
	}

	length := varintLength(mag)
	buf := b.WriteBuff(1 + length)
	buf[0] = byte(length<<1) | sign
	for i := 0; i < length; i++ {
		buf[1+i] = byte(mag >> (8 * i))
	}
	return nil
}

// varintLength returns the minimum number of little-endian bytes, in [1,7],
// needed to represent mag.
func varintLength(mag uint64) int {
	length := 1
	for mag > (uint64(1)<<(8*length))-1 {
		length++
	}
	return length
}

// ReadVarint7 reads a varint7-encoded signed integer.
func ReadVarint7(c *Cursor) (int64, error) {
	tag, err := c.ReadByte()
	if err != nil {
		return 0, err
	}
	if tag == 0 {
		return 0, nil
	}

	length := int(tag >> 1)
	sign := tag & 1
	buf, err := c.ReadN(length)
	if err != nil {
		return 0, err
	}

	var mag uint64
	for i := 0; i < length; i++ {
		mag |= uint64(buf[i]) << (8 * i)
	}

	if sign == 1 {
		return int64(mag), nil
	}
	return -int64(mag), nil
}
