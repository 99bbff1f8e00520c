package locomotion

import (
	"github.com/Zephyrlll/fillstellar/common"
	"github.com/Zephyrlll/fillstellar/engine/avatar"
	"github.com/Zephyrlll/fillstellar/engine/terrain"
	"github.com/Zephyrlll/fillstellar/engine/world"
)

// groundHysteresis is the altitude margin above the standing height before an
// actor is considered airborne again. Without it, floating-point jitter on a
// perfectly flat surface flips the grounded flag every frame.
const groundHysteresis = 0.01

// Controller is one actor's locomotion state machine: it owns position,
// velocity, and orientation, consumes semantic input events, and integrates
// movement, gravity, and ground collision against a SphericalWorld each
// frame. The camera manager reads controller state; it never mutates it.
type Controller interface {
	// SetPosition (re)initializes the controller at an explicit world
	// position, recomputing the local frame and placing the visual puppet.
	// Input received before the first SetPosition call accumulates but does
	// not move the actor.
	//
	// Parameters:
	//   - position: world-space position to place the actor at
	//
	// Returns:
	//   - error: error if the puppet could not be initialized
	SetPosition(position common.Vec3) error

	// Update runs one frame of movement integration: input projection onto
	// the local tangent frame, jump impulse, gravity, and altitude-based
	// ground collision. A no-op until SetPosition has been called.
	//
	// Parameters:
	//   - deltaTime: elapsed frame time in seconds
	Update(deltaTime float32)

	// Position returns a copy of the actor's current world-space position.
	// Mutating the returned value never affects controller state.
	//
	// Returns:
	//   - common.Vec3: the current position
	Position() common.Vec3

	// Velocity returns a copy of the actor's current world-space velocity.
	//
	// Returns:
	//   - common.Vec3: the current velocity
	Velocity() common.Vec3

	// IsGrounded reports whether the actor is standing on the surface.
	//
	// Returns:
	//   - bool: true when grounded
	IsGrounded() bool

	// Pose returns the camera pose this controller produces for the current
	// actor state: identical to the actor pose in first person, the orbit
	// rig pose in third person.
	//
	// Returns:
	//   - common.Pose: the view pose
	Pose() common.Pose

	// Activate applies this controller's view-mode side effects (puppet
	// visibility) when it becomes the active controller.
	Activate()

	// Deactivate is called when the controller stops being active.
	Deactivate()

	// HandleActionDown records a semantic input action press.
	//
	// Parameters:
	//   - action: the pressed action
	HandleActionDown(action common.Action)

	// HandleActionUp records a semantic input action release.
	//
	// Parameters:
	//   - action: the released action
	HandleActionUp(action common.Action)

	// HandleLookDelta accumulates a pointer delta into yaw and pitch. Pitch
	// is clamped to the controller's pitch range to prevent view inversion.
	//
	// Parameters:
	//   - dx: horizontal pointer delta in device units
	//   - dy: vertical pointer delta in device units
	HandleLookDelta(dx, dy float32)

	// HandleZoom adjusts the camera distance (third person only; a no-op for
	// first person).
	//
	// Parameters:
	//   - delta: wheel delta, positive zooms in
	HandleZoom(delta float32)

	// HandlePointerDown records the start of a drag (third-person orbit
	// trigger). First person ignores it.
	HandlePointerDown()

	// HandlePointerUp records the end of a drag.
	HandlePointerUp()

	// Dispose releases the visual puppet and marks the controller unusable.
	// Safe to call more than once.
	Dispose()
}

// actorState is the locomotion state shared by both controller variants.
// Not safe for concurrent use; the owning controller guards it.
type actorState struct {
	w      world.SphericalWorld
	t      terrain.Terrain
	puppet avatar.Puppet

	position common.Vec3
	velocity common.Vec3
	yaw      float32
	pitch    float32
	pitchMin float32
	pitchMax float32

	moveForward  bool
	moveBackward bool
	moveLeft     bool
	moveRight    bool
	isRunning    bool
	isJumping    bool
	isGrounded   bool

	walkSpeed    float32
	runSpeed     float32
	jumpImpulse  float32
	playerHeight float32
	sensitivity  float32

	initialized bool
	disposed    bool
}

// frameVectors holds the per-frame view and movement directions derived from
// the local reference frame and the actor's yaw/pitch.
type frameVectors struct {
	up          common.Vec3
	viewForward common.Vec3
	viewRight   common.Vec3
	moveDir     common.Vec3 // tangent-plane movement direction, zero if idle
}

// orientation composes the view rotation from yaw and pitch at the given
// local frame: yaw about up first, then pitch about the yaw-rotated right
// axis. Applying yaw before pitch keeps the yaw axis fixed to the surface
// normal, which avoids orientation drift anywhere on the sphere.
func (a *actorState) orientation(up, right common.Vec3) common.Quat {
	qYaw := common.QuatFromAxisAngle(up, a.yaw)
	yawedRight := qYaw.Rotate(right)
	qPitch := common.QuatFromAxisAngle(yawedRight, a.pitch)
	return qPitch.Mul(qYaw)
}

// integrate runs the per-frame locomotion step and returns the frame vectors
// used for camera placement. Returns false until SetPosition has initialized
// the actor, in which case the frame is skipped entirely.
func (a *actorState) integrate(deltaTime float32) (frameVectors, bool) {
	if !a.initialized || a.disposed {
		return frameVectors{}, false
	}

	// 1-3. Local frame and view directions.
	up := a.w.UpVector(a.position)
	forward := a.w.ForwardVector(a.position)
	right := a.w.RightVector(a.position)
	orient := a.orientation(up, right)
	viewForward := orient.Rotate(forward)
	viewRight := orient.Rotate(right)

	// 4. Tangent-plane movement directions. Projecting out the up component
	// makes walking speed independent of camera pitch.
	walkForward := viewForward.ProjectOnPlane(up).Normalize()
	walkRight := viewRight.ProjectOnPlane(up).Normalize()

	// 5. Movement input.
	var moveDir common.Vec3
	if a.moveForward {
		moveDir = moveDir.Add(walkForward)
	}
	if a.moveBackward {
		moveDir = moveDir.Sub(walkForward)
	}
	if a.moveRight {
		moveDir = moveDir.Add(walkRight)
	}
	if a.moveLeft {
		moveDir = moveDir.Sub(walkRight)
	}
	var move common.Vec3
	if !moveDir.IsZero() {
		moveDir = moveDir.Normalize()
		speed := a.walkSpeed
		if a.isRunning {
			speed = a.runSpeed
		}
		move = moveDir.Scale(speed * deltaTime)
	}

	// 6. Jump impulse replaces the vertical velocity component outright.
	if a.isJumping && a.isGrounded {
		a.velocity = a.velocity.ProjectOnPlane(up).Add(up.Scale(a.jumpImpulse))
		a.isGrounded = false
		a.isJumping = false
	}

	// 7. Gravity acts every frame; ground collision is what cancels it.
	a.velocity = a.velocity.Add(up.Scale(-a.w.Gravity() * deltaTime))

	// 8. Integrate.
	a.position = a.position.Add(move).Add(a.velocity.Scale(deltaTime))

	// 9. Ground collision via altitude, not a flat Y plane.
	s := a.w.CartesianToSpherical(a.position)
	ground := a.playerHeight + a.t.SurfaceAltitude(s.Lat, s.Lon)
	if s.Altitude <= ground {
		a.position = a.w.SphericalToCartesian(world.Spherical{Lat: s.Lat, Lon: s.Lon, Altitude: ground})
		groundUp := a.w.UpVector(a.position)
		if d := a.velocity.Dot(groundUp); d < 0 {
			a.velocity = a.velocity.Sub(groundUp.Scale(d))
		}
		a.isGrounded = true
	} else if s.Altitude > ground+groundHysteresis {
		a.isGrounded = false
	}

	// 11. Push state to the visual puppet, if any.
	if a.puppet != nil {
		a.puppet.SetMovementDirection(moveDir, a.isRunning)
		a.puppet.UpdateState(avatar.ActorState{
			Position:   a.position,
			Velocity:   a.velocity,
			IsGrounded: a.isGrounded,
			IsJumping:  a.isJumping,
		})
		a.puppet.Update(deltaTime)
	}

	return frameVectors{
		up:          up,
		viewForward: viewForward,
		viewRight:   viewRight,
		moveDir:     moveDir,
	}, true
}

// applyAction updates a movement flag for a semantic action transition.
func (a *actorState) applyAction(action common.Action, down bool) {
	switch action {
	case common.ActionMoveForward:
		a.moveForward = down
	case common.ActionMoveBackward:
		a.moveBackward = down
	case common.ActionMoveLeft:
		a.moveLeft = down
	case common.ActionMoveRight:
		a.moveRight = down
	case common.ActionRun:
		a.isRunning = down
	case common.ActionJump:
		// Presses while airborne are dropped rather than buffered; a stale
		// request must not fire on the next landing.
		if down && a.isGrounded {
			a.isJumping = true
		}
	}
}

// applyLook accumulates a pointer delta into yaw/pitch with pitch clamping.
func (a *actorState) applyLook(dx, dy float32) {
	a.yaw -= dx * a.sensitivity
	a.pitch = common.Clamp(a.pitch-dy*a.sensitivity, a.pitchMin, a.pitchMax)
}
