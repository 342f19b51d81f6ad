package kernel

// buffer.go implements Buffer: an immutable-by-convention byte sequence
// with value semantics but cheap (O(1)) copy, because the copy only
// aliases the shared backing slice. Mutating a Buffer's bytes after it has
// been exposed through a Port is undefined behavior by convention, not
// enforced at runtime -- it will escape to the heap, but that is the
// caller's choice, the same trade-off any dereferenced value out of
// pooled storage makes.
//
// © 2025 flowkernel authors. MIT License.

import (
	"bytes"

	"github.com/riftline/flowkernel/internal/slabpool"
	"github.com/riftline/flowkernel/internal/unsafeview"
)

// Buffer is a variable-length, content-comparable byte sequence. The zero
// value is a valid empty Buffer.
type Buffer struct {
	data []byte
}

// NewBuffer constructs a Buffer holding size zero bytes.
func NewBuffer(size int) Buffer {
	return Buffer{data: make([]byte, size)}
}

// NewBufferFill constructs a Buffer of size bytes, all set to fill.
func NewBufferFill(size int, fill byte) Buffer {
	b := make([]byte, size)
	for i := range b {
		b[i] = fill
	}
	return Buffer{data: b}
}

// NewBufferFrom copies bs into a fresh Buffer.
func NewBufferFrom(bs []byte) Buffer {
	cp := make([]byte, len(bs))
	copy(cp, bs)
	return Buffer{data: cp}
}

// NewPooledBuffer copies bs into a Buffer whose backing storage is carved
// from pool, amortizing allocation for high-frequency construction (the
// pooled path is otherwise observably identical to NewBufferFrom).
func NewPooledBuffer(pool *slabpool.Pool, bs []byte) Buffer {
	dst := pool.Alloc(len(bs))
	copy(dst, bs)
	return Buffer{data: dst}
}

// Size returns the number of bytes in the buffer.
func (b Buffer) Size() int {
	return len(b.data)
}

// Data returns the raw backing slice. Callers must treat it as read-only
// for the remainder of the step per the Buffer contract.
func (b Buffer) Data() []byte {
	return b.data
}

// At returns the byte at index i, failing with IndexOutOfRangeError if i is
// out of bounds.
func (b Buffer) At(i int) (byte, error) {
	if i < 0 || i >= len(b.data) {
		return 0, &IndexOutOfRangeError{Index: i, Size: len(b.data)}
	}
	return b.data[i], nil
}

// Equal compares two Buffers by content.
func (b Buffer) Equal(other Buffer) bool {
	return bytes.Equal(b.data, other.data)
}

// Assign replaces b's aliased storage with other's, making b and other
// alias the same backing slice (this is what happens implicitly on every
// ordinary Go assignment of a Buffer value; the method exists to make the
// aliasing explicit at call sites that want to document intent).
func (b *Buffer) Assign(other Buffer) {
	b.data = other.data
}

// AsString returns a zero-copy string view of the buffer's bytes. The
// returned string aliases b's storage; per the Buffer contract, b must not
// be mutated for as long as the string is alive.
func (b Buffer) AsString() string {
	return unsafeview.BytesToString(b.data)
}

// ElementFormat identifies the scalar type of a Buffer's optional typed
// numeric view.
type ElementFormat uint8

const (
	FormatUint8 ElementFormat = iota
	FormatInt32
	FormatInt64
	FormatFloat32
	FormatFloat64
)

// TypedView describes a Buffer's bytes as a homogeneous numeric view. Ports
// do not interpret this metadata; it exists purely for producers/consumers
// that agree out of band on a Buffer's shape.
type TypedView struct {
	Format ElementFormat
	Shape  []int
}

// ElementSize returns the byte width of one element of format f.
func (f ElementFormat) ElementSize() int {
	switch f {
	case FormatUint8:
		return 1
	case FormatInt32, FormatFloat32:
		return 4
	case FormatInt64, FormatFloat64:
		return 8
	default:
		return 0
	}
}

// Int32View reinterprets the buffer's bytes as a []int32 without copying.
// The caller is responsible for having constructed the buffer with a
// length that is a multiple of 4.
func (b Buffer) Int32View() []int32 {
	return unsafeview.Cast[int32](b.data)
}

// Float64View reinterprets the buffer's bytes as a []float64 without
// copying. The caller is responsible for having constructed the buffer
// with a length that is a multiple of 8.
func (b Buffer) Float64View() []float64 {
	return unsafeview.Cast[float64](b.data)
}
