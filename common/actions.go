package common

// Action identifies a semantic input action after keyboard mapping.
// Raw key codes are translated into actions by the input binder so that
// locomotion controllers never parse device key codes directly.
type Action int

// Input actions understood by the locomotion controllers and camera manager.
const (
	// ActionNone is the zero value; it is ignored by all handlers.
	ActionNone Action = iota
	// ActionMoveForward moves the actor along the tangent-projected view forward.
	ActionMoveForward
	// ActionMoveBackward moves opposite the tangent-projected view forward.
	ActionMoveBackward
	// ActionMoveLeft strafes left relative to the current view.
	ActionMoveLeft
	// ActionMoveRight strafes right relative to the current view.
	ActionMoveRight
	// ActionJump applies a jump impulse when the actor is grounded.
	ActionJump
	// ActionRun switches movement from walk speed to run speed while held.
	ActionRun
	// ActionToggleView requests a first-person/third-person mode transition.
	ActionToggleView
)

// String returns a readable name for the action, for logging.
//
// Returns:
//   - string: the action name
func (a Action) String() string {
	switch a {
	case ActionMoveForward:
		return "move-forward"
	case ActionMoveBackward:
		return "move-backward"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionJump:
		return "jump"
	case ActionRun:
		return "run"
	case ActionToggleView:
		return "toggle-view"
	default:
		return "none"
	}
}
