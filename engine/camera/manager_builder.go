package camera

import (
	"github.com/Zephyrlll/fillstellar/engine/locomotion"
)

type ManagerBuilderOption func(*managerImpl)

// WithFirstPersonController sets the controller used in first-person mode.
//
// Parameters:
//   - ctrl: the first-person controller
//
// Returns:
//   - ManagerBuilderOption: a function that sets the first-person controller
func WithFirstPersonController(ctrl locomotion.Controller) ManagerBuilderOption {
	return func(m *managerImpl) {
		m.firstPerson = ctrl
	}
}

// WithThirdPersonController sets the controller used in third-person mode.
//
// Parameters:
//   - ctrl: the third-person controller
//
// Returns:
//   - ManagerBuilderOption: a function that sets the third-person controller
func WithThirdPersonController(ctrl locomotion.Controller) ManagerBuilderOption {
	return func(m *managerImpl) {
		m.thirdPerson = ctrl
	}
}

// WithInitialMode sets the view mode the manager starts in.
//
// Parameters:
//   - mode: the starting view mode
//
// Returns:
//   - ManagerBuilderOption: a function that sets the initial mode
func WithInitialMode(mode Mode) ManagerBuilderOption {
	return func(m *managerImpl) {
		m.mode = mode
	}
}

// WithTransitionDuration sets how long the animated view switch takes.
// Durations at or below zero are ignored.
//
// Parameters:
//   - seconds: transition duration in seconds
//
// Returns:
//   - ManagerBuilderOption: a function that sets the transition duration
func WithTransitionDuration(seconds float32) ManagerBuilderOption {
	return func(m *managerImpl) {
		if seconds <= 0 {
			return
		}
		m.transitionDuration = seconds
	}
}
