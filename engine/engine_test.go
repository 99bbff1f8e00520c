package engine

import (
	"testing"
	"time"
)

func TestSetTickRateBeforeRunUpdatesField(t *testing.T) {
	e := NewEngine().(*engine)
	e.SetTickRate(120)
	if e.engineTickRate != time.Second/120 {
		t.Fatalf("tick rate = %v, want %v", e.engineTickRate, time.Second/120)
	}
	select {
	case <-e.tickRateChannel:
		t.Fatal("rate change queued while the engine is stopped")
	default:
	}
}

func TestSetTickRateWhileRunningQueuesUpdate(t *testing.T) {
	e := NewEngine().(*engine)
	e.running = true
	e.SetTickRate(120)
	select {
	case got := <-e.tickRateChannel:
		if got != time.Second/120 {
			t.Fatalf("queued rate = %v, want %v", got, time.Second/120)
		}
	default:
		t.Fatal("no rate change queued for the running loop")
	}
}

func TestSetTickRateReplacesPendingUpdate(t *testing.T) {
	e := NewEngine().(*engine)
	e.running = true
	e.SetTickRate(30)
	e.SetTickRate(144)
	select {
	case got := <-e.tickRateChannel:
		if got != time.Second/144 {
			t.Fatalf("queued rate = %v, want the latest %v", got, time.Second/144)
		}
	default:
		t.Fatal("no rate change queued")
	}
	select {
	case stale := <-e.tickRateChannel:
		t.Fatalf("stale rate %v left in the channel", stale)
	default:
	}
}

func TestHandleMarksEngineRunning(t *testing.T) {
	e := NewEngine().(*engine)
	e.handle()
	if !e.running {
		t.Fatal("engine not marked running after handle")
	}
	e.Quit()
	e.wg.Wait()
	if e.running {
		t.Fatal("engine still marked running after quit")
	}
}

func TestWithProfilerIntervalApplies(t *testing.T) {
	// The option must not panic and must leave the profiler usable; the
	// interval behavior itself is covered in the profiler package.
	e := NewEngine(WithProfilerInterval(100 * time.Millisecond)).(*engine)
	if e.profiler == nil {
		t.Fatal("profiler missing after interval option")
	}
}
