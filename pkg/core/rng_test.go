package core

import "testing"

func TestChanceDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 1000; i++ {
		if a.Chance(0.3) != b.Chance(0.3) {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) must always succeed")
		}
	}
}

func TestChanceRate(t *testing.T) {
	r := NewRNG(42)
	const draws = 20000
	hits := 0
	for i := 0; i < draws; i++ {
		if r.Chance(0.25) {
			hits++
		}
	}
	rate := float64(hits) / draws
	if rate < 0.23 || rate > 0.27 {
		t.Fatalf("Chance(0.25) hit rate %.3f, expected about 0.25", rate)
	}
}
