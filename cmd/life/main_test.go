package main

import (
	"context"
	"errors"
	"testing"

	"golife/pkg/life"
)

func TestOverridesMap(t *testing.T) {
	var l kvList
	for _, kv := range []string{"dim=150", "density=0.5", "rule=B3/S23"} {
		if err := l.Set(kv); err != nil {
			t.Fatal(err)
		}
	}
	m, err := l.Map()
	if err != nil {
		t.Fatal(err)
	}
	if m["dim"] != "150" || m["density"] != "0.5" || m["rule"] != "B3/S23" {
		t.Fatalf("unexpected map %v", m)
	}
	if _, err := (kvList{"dim"}).Map(); err == nil {
		t.Fatal("expected an error for a missing '='")
	}
}

func TestMultiPublisherStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	count := life.PublisherFunc(func(life.Snapshot) error {
		calls++
		return nil
	})
	fail := life.PublisherFunc(func(life.Snapshot) error { return boom })

	err := multiPublisher{count, fail, count}.Publish(life.Snapshot{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("publishers after the failure ran: %d calls", calls)
	}
}

func TestVerifyAgainstOther(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Dim = 40
	cfg.MaxStep = 8
	cfg.Density = 0.5
	sim, err := life.NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	final, err := sim.Run(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := verifyAgainstOther(context.Background(), cfg, final); err != nil {
		t.Fatal(err)
	}
}
