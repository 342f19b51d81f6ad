package unsafeview

import "testing"

func TestBytesToStringRoundTrip(t *testing.T) {
	b := []byte("hello")
	s := BytesToString(b)
	if s != "hello" {
		t.Fatalf("BytesToString(%q) = %q", b, s)
	}
}

func TestStringToBytesRoundTrip(t *testing.T) {
	s := "hello"
	b := StringToBytes(s)
	if string(b) != s {
		t.Fatalf("StringToBytes(%q) = %q", s, b)
	}
}

func TestCastReinterpretsLength(t *testing.T) {
	raw := make([]byte, 16)
	floats := Cast[float32](raw)
	if len(floats) != 4 {
		t.Errorf("Cast[float32] len = %d, want 4", len(floats))
	}
	ints := Cast[int64](raw)
	if len(ints) != 2 {
		t.Errorf("Cast[int64] len = %d, want 2", len(ints))
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ x, align, want uintptr }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
	}
	for _, c := range cases {
		if got := AlignUp(c.x, c.align); got != c.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", c.x, c.align, got, c.want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, x := range []uintptr{1, 2, 4, 8, 1024} {
		if !IsPowerOfTwo(x) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", x)
		}
	}
	for _, x := range []uintptr{0, 3, 5, 6, 1023} {
		if IsPowerOfTwo(x) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", x)
		}
	}
}
