package camera

import (
	"github.com/Zephyrlll/fillstellar/common"
)

type CameraBuilderOption func(*cameraImpl)

// WithPose sets the camera's initial pose.
// Poses with a zero up vector are ignored.
//
// Parameters:
//   - pose: the pose to set (eye, target, up)
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's pose
func WithPose(pose common.Pose) CameraBuilderOption {
	return func(c *cameraImpl) {
		if pose.Up.IsZero() {
			return
		}
		c.pose = pose
	}
}

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}
