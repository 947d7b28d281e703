package main

import (
	"errors"
	"slices"
	"testing"

	"golife/pkg/life"
)

func TestParseDims(t *testing.T) {
	dims, err := parseDims(" 64, 128 ,,256")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(dims, []int{64, 128, 256}) {
		t.Fatalf("got %v", dims)
	}
	for _, bad := range []string{"", "0", "64,x", "-3"} {
		if _, err := parseDims(bad); !errors.Is(err, life.ErrInvalidDimension) {
			t.Fatalf("%q: expected ErrInvalidDimension, got %v", bad, err)
		}
	}
}
