package profiler

import (
	"testing"
	"time"
)

func TestTickRespectsDefaultInterval(t *testing.T) {
	p := NewProfiler()
	// Default interval is one second; an immediate tick must not log.
	if p.Tick() {
		t.Fatal("tick logged before the interval elapsed")
	}
}

func TestSetIntervalShortensLogCadence(t *testing.T) {
	p := NewProfiler()
	p.SetInterval(time.Nanosecond)
	time.Sleep(time.Millisecond)
	if !p.Tick() {
		t.Fatal("tick did not log after the shortened interval elapsed")
	}
}

func TestSetIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetInterval(0)
	p.SetInterval(-time.Second)
	if p.Tick() {
		t.Fatal("non-positive interval replaced the default")
	}
}
