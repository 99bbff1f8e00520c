package input

import (
	"github.com/Zephyrlll/fillstellar/common"
)

type BinderOption func(*binderImpl)

// WithBindings replaces the default key-to-action map.
//
// Parameters:
//   - bindings: key code to action map to use
//
// Returns:
//   - BinderOption: a function that sets the bindings
func WithBindings(bindings map[uint32]common.Action) BinderOption {
	return func(b *binderImpl) {
		if bindings == nil {
			return
		}
		b.bindings = bindings
	}
}

// WithCaptureOnClick controls whether a left click captures the cursor
// when it is not already captured. Enabled by default.
//
// Parameters:
//   - enabled: true to capture the cursor on click
//
// Returns:
//   - BinderOption: a function that sets the behavior
func WithCaptureOnClick(enabled bool) BinderOption {
	return func(b *binderImpl) {
		b.captureOnClick = enabled
	}
}
