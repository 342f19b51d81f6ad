package kernel

import "testing"

func TestBufferEqual(t *testing.T) {
	a := NewBufferFrom([]byte("abc"))
	b := NewBufferFrom([]byte("abc"))
	c := NewBufferFrom([]byte("abd"))
	if !a.Equal(b) {
		t.Errorf("identical content should compare equal")
	}
	if a.Equal(c) {
		t.Errorf("differing content should not compare equal")
	}
}

func TestBufferAssignAliases(t *testing.T) {
	a := NewBufferFrom([]byte("abc"))
	var b Buffer
	b.Assign(a)
	if !a.Equal(b) {
		t.Errorf("Assign should make b equal to a")
	}
}

func TestBufferAtBounds(t *testing.T) {
	b := NewBufferFrom([]byte("ab"))
	v, err := b.At(0)
	if err != nil || v != 'a' {
		t.Fatalf("At(0) = (%v, %v), want ('a', nil)", v, err)
	}
	if _, err := b.At(2); err == nil {
		t.Fatalf("At(2) on a 2-byte buffer should fail")
	} else if _, ok := err.(*IndexOutOfRangeError); !ok {
		t.Errorf("expected *IndexOutOfRangeError, got %T", err)
	}
}

func TestBufferFillAndSize(t *testing.T) {
	b := NewBufferFill(4, 0xAA)
	if b.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", b.Size())
	}
	for i, v := range b.Data() {
		if v != 0xAA {
			t.Errorf("byte %d = %#x, want 0xAA", i, v)
		}
	}
}

func TestBufferTypedViews(t *testing.T) {
	raw := make([]byte, 16)
	b := NewBufferFrom(raw)
	if got := len(b.Int32View()); got != 4 {
		t.Errorf("Int32View len = %d, want 4", got)
	}
	if got := len(b.Float64View()); got != 2 {
		t.Errorf("Float64View len = %d, want 2", got)
	}
}
