package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPacerDue(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	p := NewPacer(10)
	p.now = clock.now

	if got := p.Due(); got != 1 {
		t.Fatalf("first call should release the primed generation, got %d", got)
	}
	clock.advance(50 * time.Millisecond)
	if got := p.Due(); got != 0 {
		t.Fatalf("half a period elapsed, got %d generations", got)
	}
	clock.advance(60 * time.Millisecond)
	if got := p.Due(); got != 1 {
		t.Fatalf("one period elapsed, got %d generations", got)
	}
	clock.advance(time.Second)
	if got := p.Due(); got != 4 {
		t.Fatalf("a stall should be capped at 4 generations, got %d", got)
	}
	clock.advance(10 * time.Millisecond)
	if got := p.Due(); got != 0 {
		t.Fatalf("backlog should be dropped after a stall, got %d", got)
	}
}

func TestPacerRateClamp(t *testing.T) {
	p := NewPacer(0)
	if p.Rate() != 1 {
		t.Fatalf("rate %d, expected clamp to 1", p.Rate())
	}
	p.Slower()
	if p.Rate() != 1 {
		t.Fatalf("rate %d, expected to stay at 1", p.Rate())
	}
	p.SetRate(200)
	p.Faster()
	if p.Rate() != 240 {
		t.Fatalf("rate %d, expected clamp to 240", p.Rate())
	}
}
