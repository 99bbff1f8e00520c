package avatar

import (
	"sync"

	"github.com/Zephyrlll/fillstellar/common"
)

// AnimationState names the humanoid's current locomotion animation.
type AnimationState int

// Humanoid animation states, selected from the pushed actor snapshots.
const (
	// AnimationIdle plays when the actor is grounded with no movement input.
	AnimationIdle AnimationState = iota
	// AnimationWalk plays when moving at walk speed.
	AnimationWalk
	// AnimationRun plays when moving with the run flag held.
	AnimationRun
	// AnimationAirborne plays while jumping or falling.
	AnimationAirborne
)

// humanoidImpl is the reference Puppet implementation. It tracks position,
// facing, visibility, and an animation state machine driven purely by the
// snapshots the locomotion controller pushes; rendering backends read this
// state to pose an actual skinned body.
type humanoidImpl struct {
	mu *sync.Mutex

	position  common.Vec3
	facing    common.Vec3
	visible   bool
	state     AnimationState
	stateTime float32

	initialized bool
	disposed    bool
}

// Humanoid extends Puppet with read access to the derived animation state,
// for rendering backends and tests.
type Humanoid interface {
	Puppet

	// Animation returns the current animation state and how long it has been
	// active in seconds.
	//
	// Returns:
	//   - AnimationState: the active animation
	//   - float32: seconds since the animation became active
	Animation() (AnimationState, float32)

	// Visible reports whether the body is currently shown.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	// Position returns the puppet's current world-space position.
	//
	// Returns:
	//   - x, y, z position components as common.Vec3
	Position() common.Vec3

	// Facing returns the last non-zero movement direction, which the body
	// turns toward. Defaults to the zero vector before any movement.
	//
	// Returns:
	//   - common.Vec3: the facing direction
	Facing() common.Vec3
}

var _ Humanoid = &humanoidImpl{}

// NewHumanoid creates a Humanoid puppet. The puppet starts hidden; the
// owning controller decides visibility per view mode.
//
// Returns:
//   - Humanoid: the newly created puppet
func NewHumanoid() Humanoid {
	return &humanoidImpl{
		mu: &sync.Mutex{},
	}
}

func (h *humanoidImpl) Initialize(position common.Vec3) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.position = position
	h.initialized = true
	h.disposed = false
	return nil
}

func (h *humanoidImpl) SetPosition(position common.Vec3) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.position = position
}

func (h *humanoidImpl) SetMovementDirection(direction common.Vec3, isRunning bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !direction.IsZero() {
		h.facing = direction.Normalize()
		if isRunning {
			h.setState(AnimationRun)
		} else {
			h.setState(AnimationWalk)
		}
		return
	}
	if h.state == AnimationWalk || h.state == AnimationRun {
		h.setState(AnimationIdle)
	}
}

func (h *humanoidImpl) UpdateState(state ActorState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.position = state.Position
	if !state.IsGrounded {
		h.setState(AnimationAirborne)
	} else if h.state == AnimationAirborne {
		h.setState(AnimationIdle)
	}
}

func (h *humanoidImpl) SetVisible(visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visible = visible
}

func (h *humanoidImpl) Update(deltaTime float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stateTime += deltaTime
}

func (h *humanoidImpl) Dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visible = false
	h.initialized = false
	h.disposed = true
}

func (h *humanoidImpl) Animation() (AnimationState, float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state, h.stateTime
}

func (h *humanoidImpl) Visible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible
}

func (h *humanoidImpl) Position() common.Vec3 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.position
}

func (h *humanoidImpl) Facing() common.Vec3 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.facing
}

// setState switches the animation state and resets its timer.
// Caller must hold the mutex.
func (h *humanoidImpl) setState(s AnimationState) {
	if h.state == s {
		return
	}
	h.state = s
	h.stateTime = 0
}
