package kernel

import "testing"

func lessInt(a, b int) bool { return a < b }

func TestOrderedMapTryEmplaceSortsKeys(t *testing.T) {
	m := NewOrderedMap[int, string](lessInt)
	m.TryEmplace(3, "c")
	m.TryEmplace(1, "a")
	m.TryEmplace(2, "b")

	want := []int{1, 2, 3}
	for i, k := range want {
		got, err := m.Key(i)
		if err != nil {
			t.Fatalf("Key(%d): %v", i, err)
		}
		if got != k {
			t.Errorf("Key(%d) = %d, want %d", i, got, k)
		}
	}
}

func TestOrderedMapTryEmplaceIsIdempotent(t *testing.T) {
	m := NewOrderedMap[int, string](lessInt)
	if _, inserted := m.TryEmplace(1, "a"); !inserted {
		t.Fatalf("first TryEmplace should insert")
	}
	if _, inserted := m.TryEmplace(1, "b"); inserted {
		t.Fatalf("second TryEmplace should be a no-op")
	}
	v, err := m.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if v != "a" {
		t.Errorf("At(1) = %q, want %q (TryEmplace should not overwrite)", v, "a")
	}
}

func TestOrderedMapAtMissingKey(t *testing.T) {
	m := NewOrderedMap[int, string](lessInt)
	if _, err := m.At(42); err == nil {
		t.Fatalf("expected KeyNotFoundError, got nil")
	} else if _, ok := err.(*KeyNotFoundError); !ok {
		t.Errorf("expected *KeyNotFoundError, got %T", err)
	}
}

func TestOrderedMapIndexOutOfRange(t *testing.T) {
	m := NewOrderedMap[int, string](lessInt)
	m.TryEmplace(1, "a")
	if _, err := m.Index(5); err == nil {
		t.Fatalf("expected IndexOutOfRangeError, got nil")
	} else if _, ok := err.(*IndexOutOfRangeError); !ok {
		t.Errorf("expected *IndexOutOfRangeError, got %T", err)
	}
}

// TestOrderedMapSameKeySetSameOrder is the P1/P7 property: two maps built
// from the same key set, inserted in different orders, must iterate and
// index identically.
func TestOrderedMapSameKeySetSameOrder(t *testing.T) {
	a := NewOrderedMap[string, int](lessString)
	b := NewOrderedMap[string, int](lessString)

	for _, k := range []string{"gamma", "alpha", "delta", "beta"} {
		a.TryEmplace(k, len(k))
	}
	for _, k := range []string{"beta", "delta", "alpha", "gamma"} {
		b.TryEmplace(k, len(k))
	}

	if a.Size() != b.Size() {
		t.Fatalf("size mismatch: %d vs %d", a.Size(), b.Size())
	}
	for i := 0; i < a.Size(); i++ {
		ka, _ := a.Key(i)
		kb, _ := b.Key(i)
		if ka != kb {
			t.Errorf("index %d: key %q != %q", i, ka, kb)
		}
	}
}

func TestOrderedMapSetRequiresExistingKey(t *testing.T) {
	m := NewOrderedMap[int, string](lessInt)
	if err := m.Set(1, "a"); err == nil {
		t.Fatalf("Set on absent key should fail")
	}
	m.TryEmplace(1, "a")
	if err := m.Set(1, "z"); err != nil {
		t.Fatalf("Set on present key: %v", err)
	}
	v, _ := m.At(1)
	if v != "z" {
		t.Errorf("At(1) = %q, want %q", v, "z")
	}
}

func TestOrderedMapErase(t *testing.T) {
	m := NewOrderedMap[int, string](lessInt)
	m.TryEmplace(1, "a")
	m.TryEmplace(2, "b")
	m.Erase(1)
	if m.Find(1) {
		t.Errorf("key 1 should be gone after Erase")
	}
	if m.Size() != 1 {
		t.Errorf("Size() = %d, want 1", m.Size())
	}
}
