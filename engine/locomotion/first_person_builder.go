package locomotion

import (
	"github.com/Zephyrlll/fillstellar/engine/avatar"
	"github.com/Zephyrlll/fillstellar/engine/terrain"
)

// FirstPersonOption is a functional option for configuring a first-person controller.
type FirstPersonOption func(*firstPersonImpl)

// WithFirstPersonSpeeds sets the walk and run speeds in units per second.
//
// Parameters:
//   - walk: walking speed
//   - run: running speed
//
// Returns:
//   - FirstPersonOption: functional option to set the speeds
func WithFirstPersonSpeeds(walk, run float32) FirstPersonOption {
	return func(fp *firstPersonImpl) {
		if walk > 0 {
			fp.walkSpeed = walk
		}
		if run > 0 {
			fp.runSpeed = run
		}
	}
}

// WithFirstPersonJumpImpulse sets the instantaneous vertical velocity applied
// on jump.
//
// Parameters:
//   - impulse: jump velocity along local up
//
// Returns:
//   - FirstPersonOption: functional option to set the jump impulse
func WithFirstPersonJumpImpulse(impulse float32) FirstPersonOption {
	return func(fp *firstPersonImpl) {
		if impulse > 0 {
			fp.jumpImpulse = impulse
		}
	}
}

// WithFirstPersonHeight sets the eye height above the surface used as the
// ground-collision altitude.
//
// Parameters:
//   - height: player height
//
// Returns:
//   - FirstPersonOption: functional option to set the player height
func WithFirstPersonHeight(height float32) FirstPersonOption {
	return func(fp *firstPersonImpl) {
		if height > 0 {
			fp.playerHeight = height
		}
	}
}

// WithFirstPersonSensitivity sets the pointer look sensitivity in radians per
// device unit.
//
// Parameters:
//   - sensitivity: look sensitivity multiplier
//
// Returns:
//   - FirstPersonOption: functional option to set the sensitivity
func WithFirstPersonSensitivity(sensitivity float32) FirstPersonOption {
	return func(fp *firstPersonImpl) {
		if sensitivity > 0 {
			fp.sensitivity = sensitivity
		}
	}
}

// WithFirstPersonPuppet attaches a visual puppet. The first-person controller
// keeps it hidden but still feeds it state so mode transitions start from a
// current body pose.
//
// Parameters:
//   - p: the puppet to attach
//
// Returns:
//   - FirstPersonOption: functional option to attach the puppet
func WithFirstPersonPuppet(p avatar.Puppet) FirstPersonOption {
	return func(fp *firstPersonImpl) {
		fp.puppet = p
	}
}

// WithFirstPersonTerrain sets the terrain collaborator used for ground
// height. Defaults to the featureless sphere.
//
// Parameters:
//   - t: terrain height provider
//
// Returns:
//   - FirstPersonOption: functional option to set the terrain
func WithFirstPersonTerrain(t terrain.Terrain) FirstPersonOption {
	return func(fp *firstPersonImpl) {
		if t != nil {
			fp.t = t
		}
	}
}
