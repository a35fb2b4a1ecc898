package aiwire

import (
	"encoding/binary"
	"math"
)

// All wire records are little-endian, matching the native library's
// only supported byte order.

// wireWriter appends fixed-width fields to a growing record.
type wireWriter struct {
	buf []byte
}

func (w *wireWriter) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *wireWriter) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *wireWriter) i32(v int32) {
	w.u32(uint32(v))
}

func (w *wireWriter) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *wireWriter) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *wireWriter) f64(v float64) {
	w.u64(math.Float64bits(v))
}

func (w *wireWriter) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// wireReader walks a record with a sticky error, so codecs decode a
// run of fields and check once. After the first short read every
// subsequent field reads as zero and err stays ErrTruncated.
type wireReader struct {
	buf []byte
	off int
	err error
}

func (r *wireReader) remaining() int {
	return len(r.buf) - r.off
}

func (r *wireReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.remaining() < n {
		r.err = ErrTruncated
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *wireReader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *wireReader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *wireReader) i32() int32 {
	return int32(r.u32())
}

func (r *wireReader) u64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *wireReader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *wireReader) f64() float64 {
	return math.Float64frombits(r.u64())
}

// count reads a u32 element count and rejects counts that cannot fit
// in the remaining bytes, so a corrupt record cannot drive a huge
// allocation. elemSize is the minimum wire size of one element.
func (r *wireReader) count(elemSize int) int {
	n := r.u32()
	if r.err != nil {
		return 0
	}
	if elemSize > 0 && int(n) > r.remaining()/elemSize {
		r.err = ErrTruncated
		return 0
	}
	return int(n)
}
