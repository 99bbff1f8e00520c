package locomotion

import (
	"fmt"
	"math"
	"sync"

	"github.com/Zephyrlll/fillstellar/common"
	"github.com/Zephyrlll/fillstellar/engine/terrain"
	"github.com/Zephyrlll/fillstellar/engine/world"
)

// firstPersonImpl is the first-person locomotion controller: the camera pose
// is the actor pose, look input comes from raw pointer deltas while the
// cursor is captured, and the actor's own body is hidden.
type firstPersonImpl struct {
	mu *sync.Mutex

	actorState

	// lookEnabled gates look-delta input. Cleared when cursor capture is
	// lost so a free-roaming cursor cannot spin the view.
	lookEnabled bool

	// last view directions, retained between updates so Pose is stable when
	// a frame is skipped.
	viewForward common.Vec3
	up          common.Vec3
}

var _ Controller = &firstPersonImpl{}

// NewFirstPerson creates a first-person controller on the given world.
// Defaults: walk 4.3, run 8.6, jump impulse 6, player height 1.7, pitch
// clamped to ±90°, look sensitivity 0.002.
//
// Parameters:
//   - w: the spherical world the actor walks on
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewFirstPerson(w world.SphericalWorld, options ...FirstPersonOption) Controller {
	fp := &firstPersonImpl{
		mu: &sync.Mutex{},
		actorState: actorState{
			w:            w,
			t:            terrain.NewFlatTerrain(),
			pitchMin:     float32(-math.Pi / 2),
			pitchMax:     float32(math.Pi / 2),
			walkSpeed:    4.3,
			runSpeed:     8.6,
			jumpImpulse:  6.0,
			playerHeight: 1.7,
			sensitivity:  0.002,
		},
		lookEnabled: true,
	}
	for _, option := range options {
		option(fp)
	}
	return fp
}

func (fp *firstPersonImpl) SetPosition(position common.Vec3) error {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	if fp.disposed {
		return fmt.Errorf("controller is disposed")
	}

	fp.position = position
	fp.velocity = common.Vec3{}
	fp.isGrounded = false
	fp.up = fp.w.UpVector(position)
	fp.viewForward = fp.w.ForwardVector(position)
	fp.initialized = true

	if fp.puppet != nil {
		if err := fp.puppet.Initialize(position); err != nil {
			return fmt.Errorf("failed to initialize puppet: %w", err)
		}
		// First person never renders its own body.
		fp.puppet.SetVisible(false)
	}
	return nil
}

func (fp *firstPersonImpl) Update(deltaTime float32) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	frame, ok := fp.integrate(deltaTime)
	if !ok {
		return
	}
	fp.up = frame.up
	fp.viewForward = frame.viewForward
}

func (fp *firstPersonImpl) Position() common.Vec3 {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.position
}

func (fp *firstPersonImpl) Velocity() common.Vec3 {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.velocity
}

func (fp *firstPersonImpl) IsGrounded() bool {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.isGrounded
}

func (fp *firstPersonImpl) Pose() common.Pose {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return common.Pose{
		Eye:    fp.position,
		Target: fp.position.Add(fp.viewForward),
		Up:     fp.up,
	}
}

func (fp *firstPersonImpl) Activate() {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	if fp.puppet != nil {
		fp.puppet.SetVisible(false)
	}
}

func (fp *firstPersonImpl) Deactivate() {}

func (fp *firstPersonImpl) HandleActionDown(action common.Action) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.applyAction(action, true)
}

func (fp *firstPersonImpl) HandleActionUp(action common.Action) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.applyAction(action, false)
}

func (fp *firstPersonImpl) HandleLookDelta(dx, dy float32) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	if !fp.lookEnabled {
		return
	}
	fp.applyLook(dx, dy)
}

// HandleZoom is a no-op: first person has no camera distance.
func (fp *firstPersonImpl) HandleZoom(delta float32) {}

// HandlePointerDown is a no-op: first-person look uses captured deltas, not drags.
func (fp *firstPersonImpl) HandlePointerDown() {}

func (fp *firstPersonImpl) HandlePointerUp() {}

// SetLookEnabled gates look input. Called with false when the platform
// refuses or revokes cursor capture; movement keys keep working, only the
// view stops following the pointer until capture is regained.
//
// Parameters:
//   - enabled: true to accept look deltas
func (fp *firstPersonImpl) SetLookEnabled(enabled bool) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.lookEnabled = enabled
}

func (fp *firstPersonImpl) Dispose() {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	if fp.disposed {
		return
	}
	fp.disposed = true
	fp.initialized = false
	if fp.puppet != nil {
		fp.puppet.Dispose()
		fp.puppet = nil
	}
}
