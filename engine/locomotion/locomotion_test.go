package locomotion

import (
	"math"
	"testing"

	"github.com/Zephyrlll/fillstellar/common"
	"github.com/Zephyrlll/fillstellar/engine/avatar"
	"github.com/Zephyrlll/fillstellar/engine/world"
)

const frameTime = float32(1.0 / 60.0)

func testWorld() world.SphericalWorld {
	return world.NewSphericalWorld(world.WithRadius(200), world.WithGravity(9.8))
}

// surfaceSpawn returns a standing position at the given lat/lon for an actor
// of the default height.
func surfaceSpawn(w world.SphericalWorld, lat, lon float32) common.Vec3 {
	return w.SphericalToCartesian(world.Spherical{Lat: lat, Lon: lon, Altitude: 1.7})
}

// settle runs updates until the controller reports grounded.
func settle(t *testing.T, c Controller) {
	t.Helper()
	for i := 0; i < 120; i++ {
		c.Update(frameTime)
		if c.IsGrounded() {
			return
		}
	}
	t.Fatal("controller never grounded")
}

func TestUpdateBeforeSetPositionIsNoOp(t *testing.T) {
	c := NewFirstPerson(testWorld())
	c.HandleActionDown(common.ActionMoveForward)
	c.Update(frameTime)
	if !c.Position().IsZero() {
		t.Fatalf("uninitialized controller moved to %+v", c.Position())
	}
	if !c.Velocity().IsZero() {
		t.Fatalf("uninitialized controller accumulated velocity %+v", c.Velocity())
	}
}

func TestGroundClampOnSpawn(t *testing.T) {
	w := testWorld()
	c := NewFirstPerson(w)
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	settle(t, c)
	s := w.CartesianToSpherical(c.Position())
	if math.Abs(float64(s.Altitude-1.7)) > 1e-3 {
		t.Fatalf("standing altitude = %f, want 1.7", s.Altitude)
	}
}

func TestWalkForwardOneFrame(t *testing.T) {
	w := testWorld()
	c := NewFirstPerson(w)
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	start := c.Position()
	c.HandleActionDown(common.ActionMoveForward)
	c.Update(frameTime)
	moved := c.Position().Sub(start).Length()

	want := 4.3 * frameTime
	if math.Abs(float64(moved-want)) > 2e-3 {
		t.Fatalf("one-frame walk distance = %f, want about %f", moved, want)
	}
}

func TestRunIsFasterThanWalk(t *testing.T) {
	w := testWorld()
	walk := NewFirstPerson(w)
	run := NewFirstPerson(w)
	for _, c := range []Controller{walk, run} {
		if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
			t.Fatal(err)
		}
		settle(t, c)
		c.HandleActionDown(common.ActionMoveForward)
	}
	run.HandleActionDown(common.ActionRun)

	ws := walk.Position()
	rs := run.Position()
	for i := 0; i < 30; i++ {
		walk.Update(frameTime)
		run.Update(frameTime)
	}
	walked := walk.Position().Sub(ws).Length()
	ran := run.Position().Sub(rs).Length()
	if ran <= walked {
		t.Fatalf("run distance %f not greater than walk distance %f", ran, walked)
	}
}

func TestPitchOnlyLookDoesNotMove(t *testing.T) {
	w := testWorld()
	c := NewFirstPerson(w)
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	start := c.Position()
	c.HandleLookDelta(0, 300)
	for i := 0; i < 10; i++ {
		c.Update(frameTime)
	}
	if moved := c.Position().Sub(start).Length(); moved > 1e-3 {
		t.Fatalf("pitch-only look moved the actor by %f", moved)
	}
}

func TestPitchedWalkKeepsGroundSpeed(t *testing.T) {
	w := testWorld()
	level := NewFirstPerson(w)
	pitched := NewFirstPerson(w)
	for _, c := range []Controller{level, pitched} {
		if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
			t.Fatal(err)
		}
		settle(t, c)
	}
	// Pitch hard toward the ground, then walk.
	pitched.HandleLookDelta(0, 500)
	level.HandleActionDown(common.ActionMoveForward)
	pitched.HandleActionDown(common.ActionMoveForward)

	ls := level.Position()
	ps := pitched.Position()
	for i := 0; i < 30; i++ {
		level.Update(frameTime)
		pitched.Update(frameTime)
	}
	ld := level.Position().Sub(ls).Length()
	pd := pitched.Position().Sub(ps).Length()
	if math.Abs(float64(ld-pd)) > 1e-2 {
		t.Fatalf("pitched walk distance %f differs from level walk %f", pd, ld)
	}
}

func TestJumpAndLand(t *testing.T) {
	w := testWorld()
	c := NewFirstPerson(w)
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	c.HandleActionDown(common.ActionJump)
	c.Update(frameTime)
	if c.IsGrounded() {
		t.Fatal("still grounded right after jumping")
	}
	up := w.UpVector(c.Position())
	if c.Velocity().Dot(up) <= 0 {
		t.Fatalf("jump gave no upward velocity: %f", c.Velocity().Dot(up))
	}

	// A 6 m/s impulse against 9.8 m/s^2 gravity lands in well under 2 s.
	landed := false
	for i := 0; i < 180; i++ {
		c.Update(frameTime)
		if c.IsGrounded() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("actor never landed after jumping")
	}
	up = w.UpVector(c.Position())
	if d := c.Velocity().Dot(up); d < -1e-3 {
		t.Fatalf("landing left downward velocity %f", d)
	}
	s := w.CartesianToSpherical(c.Position())
	if math.Abs(float64(s.Altitude-1.7)) > 1e-2 {
		t.Fatalf("post-landing altitude = %f, want 1.7", s.Altitude)
	}
}

func TestJumpWhileAirborneIsIgnored(t *testing.T) {
	w := testWorld()
	c := NewFirstPerson(w)
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	c.HandleActionDown(common.ActionJump)
	c.Update(frameTime)
	up := w.UpVector(c.Position())
	v1 := c.Velocity().Dot(up)

	// A second jump press mid-air must not add another impulse.
	c.HandleActionDown(common.ActionJump)
	c.Update(frameTime)
	up = w.UpVector(c.Position())
	v2 := c.Velocity().Dot(up)
	if v2 > v1 {
		t.Fatalf("airborne jump increased upward velocity: %f -> %f", v1, v2)
	}
}

func TestFirstPersonPoseFollowsActor(t *testing.T) {
	w := testWorld()
	c := NewFirstPerson(w)
	spawn := surfaceSpawn(w, 0.3, -0.7)
	if err := c.SetPosition(spawn); err != nil {
		t.Fatal(err)
	}
	pose := c.Pose()
	if pose.Eye.Sub(spawn).Length() > 1e-5 {
		t.Fatalf("eye %+v not at actor position %+v", pose.Eye, spawn)
	}
	if pose.Up.IsZero() {
		t.Fatal("pose has zero up vector")
	}
	if pose.Target.Sub(pose.Eye).IsZero() {
		t.Fatal("pose has no view direction")
	}
}

func TestFirstPersonPuppetHidden(t *testing.T) {
	w := testWorld()
	puppet := avatar.NewHumanoid()
	c := NewFirstPerson(w, WithFirstPersonPuppet(puppet))
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if puppet.Visible() {
		t.Fatal("first person must hide the avatar body")
	}
}

func TestLookDisabledSuppressesView(t *testing.T) {
	w := testWorld()
	c := NewFirstPerson(w)
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	before := c.Pose()
	c.(interface{ SetLookEnabled(bool) }).SetLookEnabled(false)
	c.HandleLookDelta(500, 0)
	c.Update(frameTime)
	after := c.Pose()

	beforeDir := before.Target.Sub(before.Eye).Normalize()
	afterDir := after.Target.Sub(after.Eye).Normalize()
	if beforeDir.Sub(afterDir).Length() > 1e-4 {
		t.Fatal("look delta rotated the view while look was disabled")
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	w := testWorld()
	c := NewFirstPerson(w, WithFirstPersonPuppet(avatar.NewHumanoid()))
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	c.Dispose()
	c.Dispose()
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err == nil {
		t.Fatal("SetPosition after Dispose should fail")
	}
}

func TestThirdPersonPoseValidBeforeFirstUpdate(t *testing.T) {
	w := testWorld()
	c := NewThirdPerson(w)
	spawn := surfaceSpawn(w, 0, 0)
	if err := c.SetPosition(spawn); err != nil {
		t.Fatal(err)
	}
	pose := c.Pose()
	if pose.Eye.Sub(spawn).IsZero() {
		t.Fatal("third-person eye coincides with the actor")
	}
	if pose.Up.IsZero() {
		t.Fatal("third-person pose has zero up")
	}
	if pose.Target.Sub(pose.Eye).IsZero() {
		t.Fatal("third-person pose has no view direction")
	}
}

func TestThirdPersonZoomClamped(t *testing.T) {
	w := testWorld()
	c := NewThirdPerson(w, WithDistanceBounds(3, 20), WithDistance(8))
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	settle(t, c)

	c.HandleZoom(-1000)
	for i := 0; i < 240; i++ {
		c.Update(frameTime)
	}
	d := c.(interface{ Distance() float32 }).Distance()
	if d > 20+1e-3 {
		t.Fatalf("distance %f exceeded maximum after zoom out", d)
	}

	c.HandleZoom(1000)
	for i := 0; i < 240; i++ {
		c.Update(frameTime)
	}
	d = c.(interface{ Distance() float32 }).Distance()
	if d < 3-1e-3 {
		t.Fatalf("distance %f fell below minimum after zoom in", d)
	}
}

func TestThirdPersonOrbitRequiresDrag(t *testing.T) {
	w := testWorld()
	free := NewThirdPerson(w)
	drag := NewThirdPerson(w)
	for _, c := range []Controller{free, drag} {
		if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
			t.Fatal(err)
		}
		settle(t, c)
	}

	base := free.Pose().Eye

	free.HandleLookDelta(200, 0)
	free.Update(frameTime)
	if free.Pose().Eye.Sub(base).Length() > 1e-2 {
		t.Fatal("look delta orbited the camera without a drag")
	}

	drag.HandlePointerDown()
	drag.HandleLookDelta(200, 0)
	for i := 0; i < 30; i++ {
		drag.Update(frameTime)
	}
	if drag.Pose().Eye.Sub(base).Length() < 1e-2 {
		t.Fatal("drag look delta did not orbit the camera")
	}
}

// wallTerrain reports a fixed obstruction on every probe.
type wallTerrain struct {
	at float32
}

func (wallTerrain) SurfaceAltitude(lat, lon float32) float32 { return 0 }

func (w wallTerrain) ObstructionDistance(origin, dir common.Vec3, maxDistance float32) (float32, bool) {
	if w.at <= maxDistance {
		return w.at, true
	}
	return 0, false
}

func TestThirdPersonObstructionClampsCamera(t *testing.T) {
	w := testWorld()
	c := NewThirdPerson(w,
		WithDistance(10),
		WithDistanceBounds(3, 20),
		WithThirdPersonTerrain(wallTerrain{at: 4}),
	)
	spawn := surfaceSpawn(w, 0, 0)
	if err := c.SetPosition(spawn); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 120; i++ {
		c.Update(frameTime)
	}

	up := w.UpVector(c.Position())
	pivot := c.Position().Add(up.Scale(2.0))
	eyeDist := c.Pose().Eye.Sub(pivot).Length()
	if eyeDist > 4 {
		t.Fatalf("camera at %f from pivot, beyond the 4.0 obstruction", eyeDist)
	}
}

func TestThirdPersonPuppetVisible(t *testing.T) {
	w := testWorld()
	puppet := avatar.NewHumanoid()
	c := NewThirdPerson(w, WithThirdPersonPuppet(puppet))
	if err := c.SetPosition(surfaceSpawn(w, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if !puppet.Visible() {
		t.Fatal("third person must show the avatar body")
	}
}
