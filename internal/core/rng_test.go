package core

import "testing"

func TestRNGSeedIsDeterministic(t *testing.T) {
	a := NewRNG(5)
	b := NewRNG(6)
	b.Seed(5)
	for i := 0; i < 32; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs after reseeding", i)
		}
	}
	if a.IntN(0) != 0 || a.IntN(-2) != 0 {
		t.Fatal("IntN must return 0 for non-positive bounds")
	}
}

func TestSignIsBalanced(t *testing.T) {
	r := NewRNG(11)
	pos := 0
	const draws = 4000
	for i := 0; i < draws; i++ {
		switch Sign(r) {
		case 1:
			pos++
		case -1:
		default:
			t.Fatal("Sign must return +1 or -1")
		}
	}
	if pos < draws*45/100 || pos > draws*55/100 {
		t.Fatalf("Sign returned +1 %d/%d times, expected roughly half", pos, draws)
	}
}
