package avatar

import (
	"github.com/Zephyrlll/fillstellar/common"
)

// ActorState is the per-frame snapshot a locomotion controller pushes to its
// visual puppet. The puppet owns its own animation state machine; the
// locomotion core never inspects bones or animation clips.
type ActorState struct {
	// Position is the actor's world-space position.
	Position common.Vec3
	// Velocity is the actor's world-space velocity, including the gravity
	// component.
	Velocity common.Vec3
	// IsGrounded reports whether the actor is standing on the surface.
	IsGrounded bool
	// IsJumping reports whether a jump impulse was applied this frame.
	IsJumping bool
}

// Puppet is the boundary contract between a locomotion controller and the
// visual body it drives. Implementations render and animate a humanoid (or
// anything else); the core only calls this contract.
type Puppet interface {
	// Initialize places the puppet at its initial world position and prepares
	// any visual resources. Called once before per-frame updates begin.
	//
	// Parameters:
	//   - position: initial world-space position
	//
	// Returns:
	//   - error: error if visual resources could not be prepared
	Initialize(position common.Vec3) error

	// SetPosition moves the puppet to an explicit world position.
	//
	// Parameters:
	//   - position: new world-space position
	SetPosition(position common.Vec3)

	// SetMovementDirection pushes the actor's current horizontal movement
	// direction (tangent-plane, unit length or zero) and running flag,
	// letting the puppet pick walk/run locomotion clips and facing.
	//
	// Parameters:
	//   - direction: tangent-plane movement direction (zero when idle)
	//   - isRunning: true when the actor is running
	SetMovementDirection(direction common.Vec3, isRunning bool)

	// UpdateState pushes the full per-frame actor snapshot.
	//
	// Parameters:
	//   - state: the actor state for this frame
	UpdateState(state ActorState)

	// SetVisible shows or hides the puppet (hidden in first-person view).
	//
	// Parameters:
	//   - visible: true to show the body
	SetVisible(visible bool)

	// Update advances the puppet's animation by deltaTime seconds.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds
	Update(deltaTime float32)

	// Dispose releases the puppet's visual resources. Safe to call more than
	// once.
	Dispose()
}
