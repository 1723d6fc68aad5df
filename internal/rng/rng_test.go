package rng

import "testing"

func TestNewIsDeterministicForAGivenSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 50; i++ {
		if va, vb := a.Intn(1000), b.Intn(1000); va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
	}
}

func TestNewDiffersAcrossSeeds(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected different seeds to diverge within 20 draws")
	}
}
