package locomotion

import (
	"github.com/Zephyrlll/fillstellar/engine/avatar"
	"github.com/Zephyrlll/fillstellar/engine/terrain"
)

// ThirdPersonOption is a functional option for configuring a third-person controller.
type ThirdPersonOption func(*thirdPersonImpl)

// WithThirdPersonSpeeds sets the walk and run speeds in units per second.
//
// Parameters:
//   - walk: walking speed
//   - run: running speed
//
// Returns:
//   - ThirdPersonOption: functional option to set the speeds
func WithThirdPersonSpeeds(walk, run float32) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if walk > 0 {
			tp.walkSpeed = walk
		}
		if run > 0 {
			tp.runSpeed = run
		}
	}
}

// WithThirdPersonJumpImpulse sets the instantaneous vertical velocity applied
// on jump.
//
// Parameters:
//   - impulse: jump velocity along local up
//
// Returns:
//   - ThirdPersonOption: functional option to set the jump impulse
func WithThirdPersonJumpImpulse(impulse float32) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if impulse > 0 {
			tp.jumpImpulse = impulse
		}
	}
}

// WithThirdPersonHeight sets the actor's standing height above the surface.
//
// Parameters:
//   - height: player height
//
// Returns:
//   - ThirdPersonOption: functional option to set the player height
func WithThirdPersonHeight(height float32) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if height > 0 {
			tp.playerHeight = height
		}
	}
}

// WithThirdPersonSensitivity sets the drag orbit sensitivity in radians per
// device unit.
//
// Parameters:
//   - sensitivity: orbit sensitivity multiplier
//
// Returns:
//   - ThirdPersonOption: functional option to set the sensitivity
func WithThirdPersonSensitivity(sensitivity float32) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if sensitivity > 0 {
			tp.sensitivity = sensitivity
		}
	}
}

// WithDistanceBounds sets the minimum and maximum orbit distance. The current
// and target distances are clamped into the new range at construction.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - ThirdPersonOption: functional option to set the distance bounds
func WithDistanceBounds(min, max float32) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if min > 0 && max > min {
			tp.minDistance = min
			tp.maxDistance = max
		}
	}
}

// WithDistance sets the initial orbit distance.
//
// Parameters:
//   - distance: initial camera distance from the actor
//
// Returns:
//   - ThirdPersonOption: functional option to set the distance
func WithDistance(distance float32) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if distance > 0 {
			tp.distance = distance
			tp.targetDistance = distance
		}
	}
}

// WithZoomSpeed sets the zoom speed multiplier applied to wheel deltas.
//
// Parameters:
//   - speed: zoom units per wheel step
//
// Returns:
//   - ThirdPersonOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if speed > 0 {
			tp.zoomSpeed = speed
		}
	}
}

// WithRigHeights sets the camera pivot height and look-at height above the
// actor position.
//
// Parameters:
//   - rigHeight: pivot height for the orbit offset
//   - lookAtHeight: aim point height above the actor's feet
//
// Returns:
//   - ThirdPersonOption: functional option to set the rig heights
func WithRigHeights(rigHeight, lookAtHeight float32) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if rigHeight > 0 {
			tp.rigHeight = rigHeight
		}
		if lookAtHeight > 0 {
			tp.lookAtHeight = lookAtHeight
		}
	}
}

// WithThirdPersonPuppet attaches the visible body the camera orbits around.
//
// Parameters:
//   - p: the puppet to attach
//
// Returns:
//   - ThirdPersonOption: functional option to attach the puppet
func WithThirdPersonPuppet(p avatar.Puppet) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		tp.puppet = p
	}
}

// WithThirdPersonTerrain sets the terrain collaborator used for ground height
// and camera obstruction probes. Defaults to the featureless sphere.
//
// Parameters:
//   - t: terrain provider
//
// Returns:
//   - ThirdPersonOption: functional option to set the terrain
func WithThirdPersonTerrain(t terrain.Terrain) ThirdPersonOption {
	return func(tp *thirdPersonImpl) {
		if t != nil {
			tp.t = t
		}
	}
}
