package input

import (
	"sync"

	"github.com/Zephyrlll/fillstellar/common"
)

// EventSource is the subset of the window surface the binder listens to.
// Satisfied by window.Window.
type EventSource interface {
	SetKeyDownCallback(callback func(keyCode uint32))
	SetKeyUpCallback(callback func(keyCode uint32))
	SetMouseMoveCallback(callback func(x, y float32))
	SetScrollCallback(callback func(delta float32))
	SetLeftMouseDownCallback(callback func(x, y float32))
	SetLeftMouseUpCallback(callback func(x, y float32))
	SetMiddleMouseDownCallback(callback func(x, y float32))
	SetMiddleMouseUpCallback(callback func(x, y float32))
	SetCaptureChangedCallback(callback func(captured bool))
	IsCursorCaptured() bool
	CaptureCursor()
}

// Sink receives the typed events the binder produces.
// Satisfied by camera.Manager.
type Sink interface {
	HandleActionDown(action common.Action)
	HandleActionUp(action common.Action)
	HandleLookDelta(dx, dy float32)
	HandleZoom(delta float32)
	HandlePointerDown()
	HandlePointerUp()
	HandleCaptureChanged(captured bool)
}

type binderImpl struct {
	mu *sync.Mutex

	sink     Sink
	source   EventSource
	bindings map[uint32]common.Action

	captureOnClick bool

	lastX    float32
	lastY    float32
	haveLast bool
}

// Binder translates raw window events into typed actions and look/zoom
// deltas, and forwards them to a Sink. Attach registers window callbacks;
// Detach removes every one of them so the sink can be released.
type Binder interface {
	// Attach registers the binder's callbacks on the given event source.
	// A previously attached source is detached first.
	//
	// Parameters:
	//   - source: the window surface to listen to
	Attach(source EventSource)

	// Detach removes all callbacks from the attached source.
	// Safe to call when nothing is attached.
	Detach()

	// Bindings returns a copy of the current key-to-action map.
	//
	// Returns:
	//   - map[uint32]common.Action: key code to action bindings
	Bindings() map[uint32]common.Action

	// Bind maps a key code to an action, replacing any existing binding
	// for that key.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//   - action: the action the key triggers
	Bind(keyCode uint32, action common.Action)
}

var _ Binder = &binderImpl{}

// NewBinder creates a Binder forwarding to the given sink with the default
// key bindings (WASD plus arrows to move, Space to jump, Shift to run,
// V to toggle the view).
//
// Parameters:
//   - sink: receiver for the translated events
//   - options: functional options to configure the binder
//
// Returns:
//   - Binder: the newly created binder (not yet attached)
func NewBinder(sink Sink, options ...BinderOption) Binder {
	b := &binderImpl{
		mu:             &sync.Mutex{},
		sink:           sink,
		bindings:       DefaultBindings(),
		captureOnClick: true,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *binderImpl) Attach(source EventSource) {
	b.Detach()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.source = source
	b.haveLast = false

	source.SetKeyDownCallback(func(keyCode uint32) {
		b.mu.Lock()
		action, ok := b.bindings[keyCode]
		sink := b.sink
		b.mu.Unlock()
		if ok && sink != nil {
			sink.HandleActionDown(action)
		}
	})
	source.SetKeyUpCallback(func(keyCode uint32) {
		b.mu.Lock()
		action, ok := b.bindings[keyCode]
		sink := b.sink
		b.mu.Unlock()
		if ok && sink != nil {
			sink.HandleActionUp(action)
		}
	})
	source.SetMouseMoveCallback(func(x, y float32) {
		b.mu.Lock()
		if !b.haveLast {
			b.lastX, b.lastY = x, y
			b.haveLast = true
			b.mu.Unlock()
			return
		}
		dx := x - b.lastX
		dy := y - b.lastY
		b.lastX, b.lastY = x, y
		sink := b.sink
		b.mu.Unlock()
		if sink != nil {
			sink.HandleLookDelta(dx, dy)
		}
	})
	source.SetScrollCallback(func(delta float32) {
		b.mu.Lock()
		sink := b.sink
		b.mu.Unlock()
		if sink != nil {
			sink.HandleZoom(delta)
		}
	})
	source.SetLeftMouseDownCallback(func(x, y float32) {
		b.mu.Lock()
		sink := b.sink
		src := b.source
		captureOnClick := b.captureOnClick
		b.mu.Unlock()
		if captureOnClick && src != nil && !src.IsCursorCaptured() {
			src.CaptureCursor()
		}
		if sink != nil {
			sink.HandlePointerDown()
		}
	})
	source.SetLeftMouseUpCallback(func(x, y float32) {
		b.mu.Lock()
		sink := b.sink
		b.mu.Unlock()
		if sink != nil {
			sink.HandlePointerUp()
		}
	})
	// Middle-button drag orbits without touching cursor capture, so the
	// camera can be inspected while the cursor stays free.
	source.SetMiddleMouseDownCallback(func(x, y float32) {
		b.mu.Lock()
		sink := b.sink
		b.mu.Unlock()
		if sink != nil {
			sink.HandlePointerDown()
		}
	})
	source.SetMiddleMouseUpCallback(func(x, y float32) {
		b.mu.Lock()
		sink := b.sink
		b.mu.Unlock()
		if sink != nil {
			sink.HandlePointerUp()
		}
	})
	source.SetCaptureChangedCallback(func(captured bool) {
		b.mu.Lock()
		b.haveLast = false
		sink := b.sink
		b.mu.Unlock()
		if sink != nil {
			sink.HandleCaptureChanged(captured)
		}
	})
}

func (b *binderImpl) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.source == nil {
		return
	}
	b.source.SetKeyDownCallback(nil)
	b.source.SetKeyUpCallback(nil)
	b.source.SetMouseMoveCallback(nil)
	b.source.SetScrollCallback(nil)
	b.source.SetLeftMouseDownCallback(nil)
	b.source.SetLeftMouseUpCallback(nil)
	b.source.SetMiddleMouseDownCallback(nil)
	b.source.SetMiddleMouseUpCallback(nil)
	b.source.SetCaptureChangedCallback(nil)
	b.source = nil
	b.haveLast = false
}

func (b *binderImpl) Bindings() map[uint32]common.Action {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[uint32]common.Action, len(b.bindings))
	for k, v := range b.bindings {
		out[k] = v
	}
	return out
}

func (b *binderImpl) Bind(keyCode uint32, action common.Action) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bindings[keyCode] = action
}
