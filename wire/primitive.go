package wire

import "math"

// MaxLen16 is the largest length an array count or string length prefix can
// carry; both are framed as a single little-endian u16.
const MaxLen16 = 0xFFFF

// WriteBool writes a single byte, 1 for true, 0 for false.
func WriteBool(b *Buffer, v bool) {
	if v {
		b.WriteByte(1)
	} else {
		b.WriteByte(0)
	}
}

// ReadBool reads a single bool byte.
func ReadBool(c *Cursor) (bool, error) {
	v, err := c.ReadByte()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// WriteShort writes n as a little-endian int16, truncating silently.
func WriteShort(b *Buffer, n int64) {
	buf := b.WriteBuff(2)
	v := uint16(int16(n))
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
}

// ReadShort reads a little-endian int16, widened to int64.
func ReadShort(c *Cursor) (int64, error) {
	buf, err := c.ReadN(2)
	if err != nil {
		return 0, err
	}
	v := uint16(buf[0]) | uint16(buf[1])<<8
	return int64(int16(v)), nil
}

// WriteFloat32 writes the IEEE 754 binary32 representation of v, little-endian.
func WriteFloat32(b *Buffer, v float32) {
	buf := b.WriteBuff(4)
	bits := math.Float32bits(v)
	buf[0] = byte(bits)
	buf[1] = byte(bits >> 8)
	buf[2] = byte(bits >> 16)
	buf[3] = byte(bits >> 24)
}

// ReadFloat32 reads an IEEE 754 binary32.
func ReadFloat32(c *Cursor) (float32, error) {
	buf, err := c.ReadN(4)
	if err != nil {
		return 0, err
	}
	bits := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	return math.Float32frombits(bits), nil
}

// WriteFloat64 writes the IEEE 754 binary64 representation of v, little-endian.
func WriteFloat64(b *Buffer, v float64) {
	buf := b.WriteBuff(8)
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * i))
	}
}

// ReadFloat64 reads an IEEE 754 binary64.
func ReadFloat64(c *Cursor) (float64, error) {
	buf, err := c.ReadN(8)
	if err != nil {
		return 0, err
	}
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(buf[i]) << (8 * i)
	}
	return math.Float64frombits(bits), nil
}

// WriteString writes a u16 LE length prefix followed by raw bytes.
// The caller must have already validated len(s) <= MaxLen16.
func WriteString(b *Buffer, s []byte) {
	buf := b.WriteBuff(2 + len(s))
	buf[0] = byte(len(s))
	buf[1] = byte(len(s) >> 8)
	copy(buf[2:], s)
}

// ReadString reads a u16 LE length prefix followed by that many raw bytes.
func ReadString(c *Cursor) ([]byte, error) {
	lbuf, err := c.ReadN(2)
	if err != nil {
		return nil, err
	}
	l := int(lbuf[0]) | int(lbuf[1])<<8
	return c.ReadN(l)
}

// WriteCount writes n as a u16 LE array/field count.
// The caller must have already validated n <= MaxLen16.
func WriteCount(b *Buffer, n int) {
	buf := b.WriteBuff(2)
	buf[0] = byte(n)
	buf[1] = byte(n >> 8)
}

// ReadCount reads a u16 LE array/field count.
func ReadCount(c *Cursor) (int, error) {
	buf, err := c.ReadN(2)
	if err != nil {
		return 0, err
	}
	return int(buf[0]) | int(buf[1])<<8, nil
}
