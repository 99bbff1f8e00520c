package locomotion

import (
	"fmt"
	"math"
	"sync"

	"github.com/Zephyrlll/fillstellar/common"
	"github.com/Zephyrlll/fillstellar/engine/terrain"
	"github.com/Zephyrlll/fillstellar/engine/world"
)

// upSnapThreshold is the dot product above which the rig's smoothed up vector
// snaps straight to the actor's up. Below it (a large surface-orientation
// change in one frame) the rig interpolates to avoid a disorienting flip.
const upSnapThreshold = 0.95

// thirdPersonImpl is the third-person locomotion controller: the actor walks
// the sphere exactly like first person, while the camera orbits on a rig
// behind it with smoothed distance, obstruction clamping, and smoothed
// position/up interpolation. Look input is drag-based: deltas apply only
// while the orbit pointer is held.
type thirdPersonImpl struct {
	mu *sync.Mutex

	actorState

	dragging bool

	// camera rig state
	distance       float32 // current, smoothed
	targetDistance float32 // desired, set by zoom input
	minDistance    float32
	maxDistance    float32
	zoomSpeed      float32

	distanceRate float32 // exponential smoothing rate for distance
	positionRate float32 // exponential smoothing rate for camera position
	upRate       float32 // exponential smoothing rate for camera up

	rigHeight     float32 // camera pivot height above the actor position
	lookAtHeight  float32 // look-at point height above the actor position
	probePadding  float32 // clearance kept in front of an obstruction
	camPos        common.Vec3
	camUp         common.Vec3
	lookAt        common.Vec3
	rigInitialized bool
}

var _ Controller = &thirdPersonImpl{}

// NewThirdPerson creates a third-person controller on the given world.
// Defaults: walk 4.3, run 8.6, jump impulse 6, player height 1.7, pitch
// clamped to ±60°, distance 8 within [3, 20], rig height 2, look-at
// height 1.2.
//
// Parameters:
//   - w: the spherical world the actor walks on
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewThirdPerson(w world.SphericalWorld, options ...ThirdPersonOption) Controller {
	tp := &thirdPersonImpl{
		mu: &sync.Mutex{},
		actorState: actorState{
			w:            w,
			t:            terrain.NewFlatTerrain(),
			pitchMin:     float32(-math.Pi / 3),
			pitchMax:     float32(math.Pi / 3),
			walkSpeed:    4.3,
			runSpeed:     8.6,
			jumpImpulse:  6.0,
			playerHeight: 1.7,
			sensitivity:  0.005,
		},
		distance:       8.0,
		targetDistance: 8.0,
		minDistance:    3.0,
		maxDistance:    20.0,
		zoomSpeed:      1.0,
		distanceRate:   8.0,
		positionRate:   10.0,
		upRate:         5.0,
		rigHeight:      2.0,
		lookAtHeight:   1.2,
		probePadding:   0.3,
	}
	for _, option := range options {
		option(tp)
	}
	tp.distance = common.Clamp(tp.distance, tp.minDistance, tp.maxDistance)
	tp.targetDistance = common.Clamp(tp.targetDistance, tp.minDistance, tp.maxDistance)
	return tp
}

func (tp *thirdPersonImpl) SetPosition(position common.Vec3) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if tp.disposed {
		return fmt.Errorf("controller is disposed")
	}

	tp.position = position
	tp.velocity = common.Vec3{}
	tp.isGrounded = false
	tp.initialized = true
	tp.rigInitialized = false

	if tp.puppet != nil {
		if err := tp.puppet.Initialize(position); err != nil {
			return fmt.Errorf("failed to initialize puppet: %w", err)
		}
		tp.puppet.SetVisible(true)
	}

	// Seed the rig immediately so Pose is valid before the first Update.
	up := tp.w.UpVector(position)
	forward := tp.w.ForwardVector(position)
	right := tp.w.RightVector(position)
	tp.camUp = up
	tp.updateRig(0, frameVectors{
		up:          up,
		viewForward: tp.orientation(up, right).Rotate(forward),
	})
	return nil
}

func (tp *thirdPersonImpl) Update(deltaTime float32) {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	frame, ok := tp.integrate(deltaTime)
	if !ok {
		return
	}
	tp.updateRig(deltaTime, frame)
}

// updateRig computes the camera placement for the frame: distance smoothing,
// candidate position, obstruction clamp, and position/up interpolation.
// Caller must hold the mutex.
func (tp *thirdPersonImpl) updateRig(deltaTime float32, frame frameVectors) {
	// Smooth current distance toward the zoom target, frame-rate independent
	// and never overshooting.
	tp.distance += (tp.targetDistance - tp.distance) * smoothingFactor(tp.distanceRate, deltaTime)

	pivot := tp.position.Add(frame.up.Scale(tp.rigHeight))
	back := frame.viewForward.Scale(-1)

	// The effective distance never exceeds the first obstruction along the
	// probe ray, minus padding, so the camera cannot clip through terrain.
	effective := tp.distance
	if d, hit := tp.t.ObstructionDistance(pivot, back, tp.distance); hit {
		clamped := d - tp.probePadding
		if clamped < 0 {
			clamped = 0
		}
		if clamped < effective {
			effective = clamped
		}
	}
	candidate := pivot.Add(back.Scale(effective))

	if !tp.rigInitialized {
		tp.camPos = candidate
		tp.camUp = frame.up
		tp.rigInitialized = true
	} else {
		// Smooth the camera toward the candidate to absorb terrain-driven
		// jumps in the clamped distance.
		tp.camPos = tp.camPos.Lerp(candidate, smoothingFactor(tp.positionRate, deltaTime))

		if tp.camUp.Dot(frame.up) < upSnapThreshold {
			tp.camUp = tp.camUp.Lerp(frame.up, smoothingFactor(tp.upRate, deltaTime)).Normalize()
		} else {
			tp.camUp = frame.up
		}
	}

	tp.lookAt = tp.position.Add(frame.up.Scale(tp.lookAtHeight))
}

// smoothingFactor converts a rate-based exponential smoothing constant into a
// per-frame interpolation factor, capped at 1 so large deltas never overshoot.
func smoothingFactor(rate, deltaTime float32) float32 {
	f := rate * deltaTime
	if f > 1 {
		return 1
	}
	return f
}

func (tp *thirdPersonImpl) Position() common.Vec3 {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return tp.position
}

func (tp *thirdPersonImpl) Velocity() common.Vec3 {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return tp.velocity
}

func (tp *thirdPersonImpl) IsGrounded() bool {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return tp.isGrounded
}

func (tp *thirdPersonImpl) Pose() common.Pose {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return common.Pose{
		Eye:    tp.camPos,
		Target: tp.lookAt,
		Up:     tp.camUp,
	}
}

func (tp *thirdPersonImpl) Activate() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if tp.puppet != nil {
		tp.puppet.SetVisible(true)
	}
}

func (tp *thirdPersonImpl) Deactivate() {}

func (tp *thirdPersonImpl) HandleActionDown(action common.Action) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.applyAction(action, true)
}

func (tp *thirdPersonImpl) HandleActionUp(action common.Action) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.applyAction(action, false)
}

// HandleLookDelta applies orbit deltas, but only while the orbit pointer is
// held; a free-moving pointer never rotates the third-person camera.
func (tp *thirdPersonImpl) HandleLookDelta(dx, dy float32) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if !tp.dragging {
		return
	}
	tp.applyLook(dx, dy)
}

func (tp *thirdPersonImpl) HandleZoom(delta float32) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.targetDistance = common.Clamp(tp.targetDistance-delta*tp.zoomSpeed, tp.minDistance, tp.maxDistance)
}

func (tp *thirdPersonImpl) HandlePointerDown() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.dragging = true
}

func (tp *thirdPersonImpl) HandlePointerUp() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.dragging = false
}

// Distance returns the current smoothed camera distance, for HUD display and
// tests.
//
// Returns:
//   - float32: the current orbit distance
func (tp *thirdPersonImpl) Distance() float32 {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	return tp.distance
}

func (tp *thirdPersonImpl) Dispose() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if tp.disposed {
		return
	}
	tp.disposed = true
	tp.initialized = false
	if tp.puppet != nil {
		tp.puppet.Dispose()
		tp.puppet = nil
	}
}
