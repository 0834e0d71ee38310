package applet

import "testing"

func TestClockOutRetractsOnce(t *testing.T) {
	r := newRig()
	a := r.bind(Right)
	a.ClockOutTicks(0, 100)

	if len(r.out.writes) != 1 {
		t.Fatalf("writes = %v", r.out.writes)
	}
	if w := r.out.writes[0]; w.ch != 2 || w.value != 0 || w.octave != 5 {
		t.Fatalf("pulse write = %+v", w)
	}

	for i := 0; i < 99; i++ {
		Tick(a)
	}
	if n := r.out.count(2); n != 1 {
		t.Fatalf("retracted early: %d writes", n)
	}
	Tick(a)
	if n := r.out.count(2); n != 2 {
		t.Fatalf("writes after 100 ticks = %d, want 2", n)
	}
	if w := r.out.writes[1]; w.value != 0 || w.octave != 0 {
		t.Fatalf("retract write = %+v", w)
	}
	for i := 0; i < 500; i++ {
		Tick(a)
	}
	if n := r.out.count(2); n != 2 {
		t.Fatalf("extra retractions: %d writes", n)
	}
}

func TestClockOutRearmReplacesCountdown(t *testing.T) {
	r := newRig()
	a := r.bind(Left)
	a.ClockOut(1)
	for i := 0; i < 50; i++ {
		Tick(a)
	}
	a.ClockOutTicks(1, 80)
	for i := 0; i < 79; i++ {
		Tick(a)
	}
	if n := r.out.count(1); n != 2 {
		t.Fatalf("writes before rearmed retraction = %d, want 2", n)
	}
	Tick(a)
	if n := r.out.count(1); n != 3 {
		t.Fatalf("writes after rearmed retraction = %d, want 3", n)
	}
	for i := 0; i < ClockTicks; i++ {
		Tick(a)
	}
	if n := r.out.count(1); n != 3 {
		t.Fatalf("double retraction: %d writes", n)
	}
}

func TestClockIdleChannelsNeverWrite(t *testing.T) {
	r := newRig()
	a := r.bind(Left)
	for i := 0; i < 1000; i++ {
		Tick(a)
	}
	if len(r.out.writes) != 0 {
		t.Fatalf("idle writes = %v", r.out.writes)
	}
}
