package generator

import (
	"sync"
	"testing"
)

func TestSeededRandIsDeterministic(t *testing.T) {
	a := NewSeededRand(42)
	b := NewSeededRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("iteration %d: %d != %d", i, x, y)
		}
	}
	if a.Digits(20) != b.Digits(20) {
		t.Error("Digits differ for the same seed")
	}
}

func TestRandIntNBounds(t *testing.T) {
	r := NewRand()
	if got := r.IntN(0); got != 0 {
		t.Errorf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Errorf("IntN(-3) = %d, want 0", got)
	}
	for i := 0; i < 1000; i++ {
		if v := r.IntN(7); v < 0 || v >= 7 {
			t.Fatalf("IntN(7) = %d out of range", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f out of range", f)
		}
	}
}

func TestRandRead(t *testing.T) {
	r := NewSeededRand(1)
	for _, n := range []int{0, 1, 7, 8, 9, 33} {
		b := make([]byte, n)
		got, err := r.Read(b)
		if err != nil {
			t.Fatalf("Read(%d) error = %v", n, err)
		}
		if got != n {
			t.Errorf("Read(%d) = %d", n, got)
		}
	}
}

func TestRandDigits(t *testing.T) {
	r := NewRand()
	d := r.Digits(50)
	if len(d) != 50 {
		t.Fatalf("len = %d, want 50", len(d))
	}
	for _, c := range d {
		if c < '0' || c > '9' {
			t.Fatalf("non digit %q in %q", c, d)
		}
	}
}

func TestRandConcurrentUse(t *testing.T) {
	r := NewRand()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				_ = r.IntN(100)
				_ = r.Bytes(6)
			}
		}()
	}
	wg.Wait()
}

func TestPick(t *testing.T) {
	r := NewSeededRand(7)
	if got := Pick[string](r, nil); got != "" {
		t.Errorf("Pick(nil) = %q, want empty", got)
	}
	s := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		v := Pick(r, s)
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("Pick returned %q", v)
		}
	}
}
