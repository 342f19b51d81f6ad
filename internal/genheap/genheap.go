// Package genheap implements a generic binary min-heap over a plain slice,
// parameterized by a caller-supplied less function instead of the
// interface{}-boxing container/heap contract. It backs the virtual-time
// scheduler's event queue (pkg/kernel/event.go), where events need only a
// "pop the smallest time" operation and never benefit from
// container/heap's Len/Swap/Push/Pop interface ceremony.
//
// Adapted from the generic min-heap idiom in
// SnellerInc-sneller/heap/heap.go: same sift-up/sift-down core, retargeted
// at a single PushEvent/PopEvent-shaped caller instead of a general-purpose
// public API.
//
// © 2025 flowkernel authors. MIT License.
package genheap

// Push adds item to x while preserving the min-heap invariant determined by
// less.
func Push[T any](x *[]T, item T, less func(a, b T) bool) {
	*x = append(*x, item)
	siftUp(*x, len(*x)-1, less)
}

// Pop removes and returns the "smallest" element of x (per less), fixing
// the heap invariant afterward.
func Pop[T any](x *[]T, less func(a, b T) bool) T {
	old := *x
	n := len(old)
	top := old[0]
	old[0] = old[n-1]
	*x = old[:n-1]
	if len(*x) > 0 {
		siftDown(*x, 0, less)
	}
	return top
}

// Peek returns the smallest element of x without removing it. Callers must
// ensure len(x) > 0.
func Peek[T any](x []T) T {
	return x[0]
}

func siftUp[T any](x []T, i int, less func(a, b T) bool) {
	for i > 0 {
		parent := (i - 1) / 2
		if less(x[parent], x[i]) {
			return
		}
		x[parent], x[i] = x[i], x[parent]
		i = parent
	}
}

func siftDown[T any](x []T, i int, less func(a, b T) bool) {
	for {
		left := 2*i + 1
		right := left + 1
		if left >= len(x) {
			return
		}
		smallest := left
		if right < len(x) && less(x[right], x[left]) {
			smallest = right
		}
		if less(x[i], x[smallest]) {
			return
		}
		x[i], x[smallest] = x[smallest], x[i]
		i = smallest
	}
}
