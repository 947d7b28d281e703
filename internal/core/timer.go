package core

import "time"

// Pacer limits how many generations per second a driver advances,
// independently of the frame rate it is polled at.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	rate        int
	now         func() time.Time
}

const (
	minRate = 1
	maxRate = 240
)

// NewPacer constructs a Pacer targeting the given generations per second.
func NewPacer(rate int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the target rate, clamped to [1, 240].
func (p *Pacer) SetRate(rate int) {
	if rate < minRate {
		rate = minRate
	}
	if rate > maxRate {
		rate = maxRate
	}
	p.rate = rate
	p.step = time.Second / time.Duration(rate)
}

// Rate returns the current target rate.
func (p *Pacer) Rate() int { return p.rate }

// Faster doubles the rate.
func (p *Pacer) Faster() { p.SetRate(p.rate * 2) }

// Slower halves the rate.
func (p *Pacer) Slower() { p.SetRate(p.rate / 2) }

// Due reports how many generations should be advanced since the last call.
// At most four are reported so a stalled caller does not spiral.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := 0
	for p.accumulator >= p.step && n < 4 {
		p.accumulator -= p.step
		n++
	}
	if n == 4 {
		p.accumulator = 0
	}
	return n
}
