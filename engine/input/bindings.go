package input

import (
	"github.com/Zephyrlll/fillstellar/common"
)

// DefaultBindings returns the standard key layout: WASD and the arrow keys
// to move, Space to jump, either Shift to run, and V to toggle the view.
//
// Returns:
//   - map[uint32]common.Action: key code to action bindings
func DefaultBindings() map[uint32]common.Action {
	return map[uint32]common.Action{
		common.KeyW:     common.ActionMoveForward,
		common.KeyUp:    common.ActionMoveForward,
		common.KeyS:     common.ActionMoveBackward,
		common.KeyDown:  common.ActionMoveBackward,
		common.KeyA:     common.ActionMoveLeft,
		common.KeyLeft:  common.ActionMoveLeft,
		common.KeyD:     common.ActionMoveRight,
		common.KeyRight: common.ActionMoveRight,

		common.KeySpace:      common.ActionJump,
		common.KeyLeftShift:  common.ActionRun,
		common.KeyRightShift: common.ActionRun,
		common.KeyV:          common.ActionToggleView,
	}
}
