// Package unsafeview centralises the kernel's unavoidable use of the
// `unsafe` standard-library package behind a small, documented surface, so
// the rest of the module stays easy to audit. Every helper states its
// pre/post conditions.
//
// ⚠️  These helpers deliberately sidestep the usual Go memory-safety
// guarantees for zero-allocation conversions. They are not part of the
// public flowkernel API and exist only to back Buffer's typed numeric view
// and string/byte interop.
//
// © 2025 flowkernel authors. MIT License.
package unsafeview

import "unsafe"

// BytesToString converts b to a string without copying. The caller must
// guarantee b is never mutated for the lifetime of the returned string.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// StringToBytes reinterprets s as a byte slice without copying. The
// returned slice MUST NOT be written to: string backing storage is
// immutable and mutating it is undefined behavior.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Cast reinterprets a byte slice as a []T without copying, used by Buffer's
// optional typed numeric view. The caller guarantees len(b) is a multiple
// of the size of T and that b's alignment satisfies T; Cast checks neither,
// and drops any trailing bytes that do not fill a whole element.
func Cast[T any](b []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || len(b) == 0 {
		return nil
	}
	n := len(b) / size
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AlignUp rounds x up to the nearest multiple of align, which must be a
// power of two.
func AlignUp(x, align uintptr) uintptr {
	return (x + align - 1) &^ (align - 1)
}

// IsPowerOfTwo reports whether x has exactly one bit set.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && (x&(x-1)) == 0
}
