package input

import (
	"testing"

	"github.com/Zephyrlll/fillstellar/common"
)

// fakeSource records registered callbacks so tests can fire events and
// verify detachment.
type fakeSource struct {
	keyDown        func(uint32)
	keyUp          func(uint32)
	mouseMove      func(x, y float32)
	scroll         func(float32)
	leftDown       func(x, y float32)
	leftUp         func(x, y float32)
	middleDown     func(x, y float32)
	middleUp       func(x, y float32)
	captureChanged func(bool)

	captured       bool
	captureRequest int
}

func (f *fakeSource) SetKeyDownCallback(cb func(uint32))           { f.keyDown = cb }
func (f *fakeSource) SetKeyUpCallback(cb func(uint32))             { f.keyUp = cb }
func (f *fakeSource) SetMouseMoveCallback(cb func(x, y float32))   { f.mouseMove = cb }
func (f *fakeSource) SetScrollCallback(cb func(float32))           { f.scroll = cb }
func (f *fakeSource) SetLeftMouseDownCallback(cb func(x, y float32)) { f.leftDown = cb }
func (f *fakeSource) SetLeftMouseUpCallback(cb func(x, y float32))   { f.leftUp = cb }
func (f *fakeSource) SetMiddleMouseDownCallback(cb func(x, y float32)) { f.middleDown = cb }
func (f *fakeSource) SetMiddleMouseUpCallback(cb func(x, y float32))   { f.middleUp = cb }
func (f *fakeSource) SetCaptureChangedCallback(cb func(bool))      { f.captureChanged = cb }
func (f *fakeSource) IsCursorCaptured() bool                       { return f.captured }
func (f *fakeSource) CaptureCursor() {
	f.captureRequest++
	f.captured = true
	if f.captureChanged != nil {
		f.captureChanged(true)
	}
}

// recordingSink collects everything the binder forwards.
type recordingSink struct {
	downs        []common.Action
	ups          []common.Action
	looks        [][2]float32
	zooms        []float32
	pointerDowns int
	pointerUps   int
	captures     []bool
}

func (r *recordingSink) HandleActionDown(a common.Action)  { r.downs = append(r.downs, a) }
func (r *recordingSink) HandleActionUp(a common.Action)    { r.ups = append(r.ups, a) }
func (r *recordingSink) HandleLookDelta(dx, dy float32)    { r.looks = append(r.looks, [2]float32{dx, dy}) }
func (r *recordingSink) HandleZoom(d float32)              { r.zooms = append(r.zooms, d) }
func (r *recordingSink) HandlePointerDown()                { r.pointerDowns++ }
func (r *recordingSink) HandlePointerUp()                  { r.pointerUps++ }
func (r *recordingSink) HandleCaptureChanged(c bool)       { r.captures = append(r.captures, c) }

func TestKeyBindingsTranslateToActions(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	b := NewBinder(sink)
	b.Attach(src)

	src.keyDown(common.KeyW)
	src.keyUp(common.KeyW)
	src.keyDown(common.KeySpace)
	src.keyDown(9999) // unbound key

	if len(sink.downs) != 2 || sink.downs[0] != common.ActionMoveForward || sink.downs[1] != common.ActionJump {
		t.Fatalf("downs = %v", sink.downs)
	}
	if len(sink.ups) != 1 || sink.ups[0] != common.ActionMoveForward {
		t.Fatalf("ups = %v", sink.ups)
	}
}

func TestCustomBinding(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	b := NewBinder(sink)
	b.Bind(common.KeyE, common.ActionJump)
	b.Attach(src)

	src.keyDown(common.KeyE)
	if len(sink.downs) != 1 || sink.downs[0] != common.ActionJump {
		t.Fatalf("rebound key produced %v", sink.downs)
	}
	if b.Bindings()[common.KeyE] != common.ActionJump {
		t.Fatal("Bindings does not reflect the rebind")
	}
}

func TestMouseMoveProducesDeltas(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	NewBinder(sink).Attach(src)

	src.mouseMove(100, 50)
	if len(sink.looks) != 0 {
		t.Fatalf("first move produced a delta: %v", sink.looks)
	}
	src.mouseMove(105, 52)
	if len(sink.looks) != 1 || sink.looks[0] != [2]float32{5, 2} {
		t.Fatalf("looks = %v, want [[5 2]]", sink.looks)
	}
}

func TestCaptureChangeResetsDeltaBaseline(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	NewBinder(sink).Attach(src)

	src.mouseMove(100, 100)
	src.captureChanged(true)
	// The first move after a capture change re-seeds the baseline instead of
	// producing a huge warp delta.
	src.mouseMove(600, 400)
	if len(sink.looks) != 0 {
		t.Fatalf("move after capture change produced a delta: %v", sink.looks)
	}
	if len(sink.captures) != 1 || !sink.captures[0] {
		t.Fatalf("captures = %v", sink.captures)
	}
}

func TestLeftClickCapturesCursor(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	NewBinder(sink).Attach(src)

	src.leftDown(10, 10)
	if src.captureRequest != 1 {
		t.Fatalf("capture requests = %d, want 1", src.captureRequest)
	}
	if sink.pointerDowns != 1 {
		t.Fatalf("pointer downs = %d, want 1", sink.pointerDowns)
	}

	// Already captured: no second request.
	src.leftDown(10, 10)
	if src.captureRequest != 1 {
		t.Fatalf("capture requested again while captured: %d", src.captureRequest)
	}
}

func TestCaptureOnClickDisabled(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	NewBinder(sink, WithCaptureOnClick(false)).Attach(src)

	src.leftDown(10, 10)
	if src.captureRequest != 0 {
		t.Fatalf("capture requested with capture-on-click disabled: %d", src.captureRequest)
	}
	if sink.pointerDowns != 1 {
		t.Fatalf("pointer downs = %d, want 1", sink.pointerDowns)
	}
}

func TestMiddleDragOrbitsWithoutCapture(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	NewBinder(sink).Attach(src)

	src.middleDown(10, 10)
	src.middleUp(12, 12)
	if src.captureRequest != 0 {
		t.Fatalf("middle button requested capture: %d", src.captureRequest)
	}
	if sink.pointerDowns != 1 || sink.pointerUps != 1 {
		t.Fatalf("pointer events = %d/%d, want 1/1", sink.pointerDowns, sink.pointerUps)
	}
}

func TestScrollForwardsZoom(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	NewBinder(sink).Attach(src)

	src.scroll(1.5)
	if len(sink.zooms) != 1 || sink.zooms[0] != 1.5 {
		t.Fatalf("zooms = %v", sink.zooms)
	}
}

func TestDetachClearsEveryCallback(t *testing.T) {
	sink := &recordingSink{}
	src := &fakeSource{}
	b := NewBinder(sink)
	b.Attach(src)
	b.Detach()

	if src.keyDown != nil || src.keyUp != nil || src.mouseMove != nil ||
		src.scroll != nil || src.leftDown != nil || src.leftUp != nil ||
		src.middleDown != nil || src.middleUp != nil || src.captureChanged != nil {
		t.Fatal("detach left callbacks registered")
	}

	// Detaching twice is harmless.
	b.Detach()
}
