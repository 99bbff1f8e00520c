package camera

import (
	"sync"

	"github.com/Zephyrlll/fillstellar/common"
	"github.com/Zephyrlll/fillstellar/engine/locomotion"
)

// Mode identifies which view the camera manager is presenting.
type Mode int

const (
	// ModeFirstPerson presents the world from the avatar's eye position.
	ModeFirstPerson Mode = iota
	// ModeThirdPerson presents the avatar from an orbiting rig behind it.
	ModeThirdPerson
)

// String returns a human-readable name for the mode.
//
// Returns:
//   - string: the mode name
func (m Mode) String() string {
	switch m {
	case ModeFirstPerson:
		return "first_person"
	case ModeThirdPerson:
		return "third_person"
	default:
		return "unknown"
	}
}

// defaultTransitionDuration is how long the animated view switch takes in seconds.
const defaultTransitionDuration = 0.6

// lookToggler is implemented by controllers whose mouse-look can be
// suspended when pointer capture is lost.
type lookToggler interface {
	SetLookEnabled(enabled bool)
}

type managerImpl struct {
	mu *sync.Mutex

	cam Camera

	firstPerson locomotion.Controller
	thirdPerson locomotion.Controller

	mode Mode

	transitioning      bool
	transitionElapsed  float32
	transitionDuration float32
	transitionFrom     common.Pose
	transitionTo       common.Pose
	pendingMode        Mode

	modeChanged []func(Mode)

	disposed bool
}

// Manager owns the active view mode and drives the camera from the matching
// locomotion controller. Toggling modes plays an animated transition between
// the two controllers' poses; while it runs, controller updates are suspended
// and further toggles are ignored.
type Manager interface {
	// Camera returns the camera the manager drives.
	//
	// Returns:
	//   - Camera: the driven camera
	Camera() Camera

	// Mode returns the current view mode. During a transition this is still
	// the mode the transition started from.
	//
	// Returns:
	//   - Mode: the current view mode
	Mode() Mode

	// IsTransitioning reports whether an animated view switch is in progress.
	//
	// Returns:
	//   - bool: true while a transition runs
	IsTransitioning() bool

	// ActiveController returns the controller for the current mode.
	//
	// Returns:
	//   - locomotion.Controller: the active controller
	ActiveController() locomotion.Controller

	// SetPosition places both controllers at the given world position and
	// snaps the camera to the active controller's pose.
	//
	// Parameters:
	//   - position: world-space position on or above the sphere surface
	//
	// Returns:
	//   - error: non-nil if the position could not be applied
	SetPosition(position common.Vec3) error

	// ToggleViewMode starts an animated switch to the other view mode.
	// Ignored while a transition is already running.
	ToggleViewMode()

	// Update advances the active controller (or the running transition) by
	// deltaTime seconds and pushes the resulting pose into the camera.
	// Should be called once per frame.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds since the previous update
	Update(deltaTime float32)

	// OnModeChanged registers a callback invoked after a transition completes
	// with the mode that became active.
	//
	// Parameters:
	//   - fn: the callback to register
	OnModeChanged(fn func(Mode))

	// HandleActionDown routes a pressed action to the relevant controller.
	// ActionToggleView is consumed by the manager itself.
	//
	// Parameters:
	//   - action: the action that was pressed
	HandleActionDown(action common.Action)

	// HandleActionUp routes a released action to the relevant controller.
	//
	// Parameters:
	//   - action: the action that was released
	HandleActionUp(action common.Action)

	// HandleLookDelta routes a pointer movement to the relevant controller.
	//
	// Parameters:
	//   - dx, dy: pointer movement in screen pixels
	HandleLookDelta(dx, dy float32)

	// HandleZoom routes a scroll step to the relevant controller.
	//
	// Parameters:
	//   - delta: positive to zoom in, negative to zoom out
	HandleZoom(delta float32)

	// HandlePointerDown routes a primary-button press to the relevant controller.
	HandlePointerDown()

	// HandlePointerUp routes a primary-button release to the relevant controller.
	HandlePointerUp()

	// HandleCaptureChanged informs the controllers whether pointer capture is held.
	// Controllers without capture-dependent look ignore it.
	//
	// Parameters:
	//   - captured: true when the cursor is captured by the window
	HandleCaptureChanged(captured bool)

	// Dispose detaches and disposes both controllers. Safe to call more than once.
	Dispose()
}

var _ Manager = &managerImpl{}

// NewManager creates a camera manager driving the given camera from a
// first-person and a third-person controller.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the manager
//
// Returns:
//   - Manager: the newly created manager
func NewManager(cam Camera, options ...ManagerBuilderOption) Manager {
	m := &managerImpl{
		mu:                 &sync.Mutex{},
		cam:                cam,
		mode:               ModeFirstPerson,
		transitionDuration: defaultTransitionDuration,
	}
	for _, option := range options {
		option(m)
	}
	if ctrl := m.controllerFor(m.mode); ctrl != nil {
		ctrl.Activate()
	}
	if other := m.controllerFor(m.otherMode()); other != nil {
		other.Deactivate()
	}
	return m
}

func (m *managerImpl) Camera() Camera {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cam
}

func (m *managerImpl) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

func (m *managerImpl) IsTransitioning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitioning
}

func (m *managerImpl) ActiveController() locomotion.Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.controllerFor(m.mode)
}

func (m *managerImpl) SetPosition(position common.Vec3) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.firstPerson != nil {
		if err := m.firstPerson.SetPosition(position); err != nil {
			return err
		}
	}
	if m.thirdPerson != nil {
		if err := m.thirdPerson.SetPosition(position); err != nil {
			return err
		}
	}
	if ctrl := m.controllerFor(m.mode); ctrl != nil {
		m.cam.SetPose(ctrl.Pose())
	}
	return nil
}

func (m *managerImpl) ToggleViewMode() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startTransition()
}

func (m *managerImpl) Update(deltaTime float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		return
	}

	if m.transitioning {
		m.advanceTransition(deltaTime)
		return
	}

	ctrl := m.controllerFor(m.mode)
	if ctrl == nil {
		return
	}
	ctrl.Update(deltaTime)
	m.cam.SetPose(ctrl.Pose())
}

func (m *managerImpl) OnModeChanged(fn func(Mode)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modeChanged = append(m.modeChanged, fn)
}

func (m *managerImpl) HandleActionDown(action common.Action) {
	if action == common.ActionToggleView {
		m.ToggleViewMode()
		return
	}
	if ctrl := m.inputController(); ctrl != nil {
		ctrl.HandleActionDown(action)
	}
}

func (m *managerImpl) HandleActionUp(action common.Action) {
	if action == common.ActionToggleView {
		return
	}
	if ctrl := m.inputController(); ctrl != nil {
		ctrl.HandleActionUp(action)
	}
}

func (m *managerImpl) HandleLookDelta(dx, dy float32) {
	if ctrl := m.inputController(); ctrl != nil {
		ctrl.HandleLookDelta(dx, dy)
	}
}

func (m *managerImpl) HandleZoom(delta float32) {
	if ctrl := m.inputController(); ctrl != nil {
		ctrl.HandleZoom(delta)
	}
}

func (m *managerImpl) HandlePointerDown() {
	if ctrl := m.inputController(); ctrl != nil {
		ctrl.HandlePointerDown()
	}
}

func (m *managerImpl) HandlePointerUp() {
	if ctrl := m.inputController(); ctrl != nil {
		ctrl.HandlePointerUp()
	}
}

func (m *managerImpl) HandleCaptureChanged(captured bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ctrl := range []locomotion.Controller{m.firstPerson, m.thirdPerson} {
		if toggler, ok := ctrl.(lookToggler); ok {
			toggler.SetLookEnabled(captured)
		}
	}
}

func (m *managerImpl) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		return
	}
	m.disposed = true
	m.transitioning = false
	m.modeChanged = nil
	if m.firstPerson != nil {
		m.firstPerson.Dispose()
	}
	if m.thirdPerson != nil {
		m.thirdPerson.Dispose()
	}
}

// startTransition captures the live camera pose and the entering controller's
// pose at the shared avatar position, then begins animating between them.
// No-op while a transition is already running or a controller is missing.
// Caller must hold the mutex.
func (m *managerImpl) startTransition() {
	if m.transitioning || m.disposed {
		return
	}
	leaving := m.controllerFor(m.mode)
	entering := m.controllerFor(m.otherMode())
	if leaving == nil || entering == nil {
		return
	}

	// Seed the entering controller at the shared avatar position so its
	// pose reflects where the avatar actually is.
	if err := entering.SetPosition(leaving.Position()); err != nil {
		return
	}

	m.transitionFrom = m.cam.Pose()
	m.transitionTo = entering.Pose()
	m.transitionElapsed = 0
	m.pendingMode = m.otherMode()
	m.transitioning = true
}

// advanceTransition steps the animated pose blend and finalizes the mode
// switch when the duration elapses. Caller must hold the mutex.
func (m *managerImpl) advanceTransition(deltaTime float32) {
	m.transitionElapsed += deltaTime
	t := common.Clamp(m.transitionElapsed/m.transitionDuration, 0, 1)
	m.cam.SetPose(blendPose(m.transitionFrom, m.transitionTo, common.EaseInOut(t)))
	if t < 1 {
		return
	}

	leaving := m.controllerFor(m.mode)
	entering := m.controllerFor(m.pendingMode)
	m.mode = m.pendingMode
	m.transitioning = false
	leaving.Deactivate()
	entering.Activate()

	handlers := make([]func(Mode), len(m.modeChanged))
	copy(handlers, m.modeChanged)
	mode := m.mode
	m.mu.Unlock()
	for _, fn := range handlers {
		fn(mode)
	}
	m.mu.Lock()
}

// inputController returns the controller input should flow to: the entering
// controller during a transition, otherwise the active one.
func (m *managerImpl) inputController() locomotion.Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.transitioning {
		return m.controllerFor(m.pendingMode)
	}
	return m.controllerFor(m.mode)
}

// controllerFor maps a mode to its controller. Caller must hold the mutex.
func (m *managerImpl) controllerFor(mode Mode) locomotion.Controller {
	if mode == ModeFirstPerson {
		return m.firstPerson
	}
	return m.thirdPerson
}

// otherMode returns the mode opposite the current one. Caller must hold the mutex.
func (m *managerImpl) otherMode() Mode {
	if m.mode == ModeFirstPerson {
		return ModeThirdPerson
	}
	return ModeFirstPerson
}

// blendPose interpolates between two camera poses. Eye positions lerp
// linearly while the view orientation travels along the shortest rotation
// arc, keeping the horizon stable on a curved surface.
func blendPose(from, to common.Pose, t float32) common.Pose {
	eye := from.Eye.Lerp(to.Eye, t)

	qa := poseOrientation(from)
	qb := poseOrientation(to)
	q := qa.Slerp(qb, t)

	forward := q.Forward()
	up := q.UpAxis()
	return common.Pose{
		Eye:    eye,
		Target: eye.Add(forward),
		Up:     up,
	}
}

// poseOrientation derives an orthonormal orientation quaternion from a pose.
func poseOrientation(p common.Pose) common.Quat {
	forward := p.Target.Sub(p.Eye).Normalize()
	if forward.IsZero() {
		forward = common.Vec3{X: 0, Y: 0, Z: -1}
	}
	right := forward.Cross(p.Up).Normalize()
	if right.IsZero() {
		right = common.Vec3{X: 1, Y: 0, Z: 0}
	}
	up := right.Cross(forward)
	return common.QuatFromAxes(right, up, forward)
}
