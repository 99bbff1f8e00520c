package avatar

import (
	"testing"

	"github.com/Zephyrlll/fillstellar/common"
)

func TestHumanoidStartsHiddenAndIdle(t *testing.T) {
	h := NewHumanoid()
	if h.Visible() {
		t.Fatal("humanoid visible before any controller claimed it")
	}
	if state, _ := h.Animation(); state != AnimationIdle {
		t.Fatalf("initial animation = %v, want idle", state)
	}
}

func TestMovementDrivesWalkAndRun(t *testing.T) {
	h := NewHumanoid()
	if err := h.Initialize(common.Vec3{X: 200}); err != nil {
		t.Fatal(err)
	}

	dir := common.Vec3{Z: 1}
	h.SetMovementDirection(dir, false)
	if state, _ := h.Animation(); state != AnimationWalk {
		t.Fatalf("animation = %v, want walk", state)
	}

	h.SetMovementDirection(dir, true)
	if state, _ := h.Animation(); state != AnimationRun {
		t.Fatalf("animation = %v, want run", state)
	}

	h.SetMovementDirection(common.Vec3{}, false)
	if state, _ := h.Animation(); state != AnimationIdle {
		t.Fatalf("animation = %v, want idle after stopping", state)
	}
}

func TestFacingTracksLastMovement(t *testing.T) {
	h := NewHumanoid()
	h.SetMovementDirection(common.Vec3{X: 2}, false)
	if got := h.Facing(); got != (common.Vec3{X: 1}) {
		t.Fatalf("facing = %+v, want normalized +x", got)
	}
	// Stopping keeps the last facing.
	h.SetMovementDirection(common.Vec3{}, false)
	if got := h.Facing(); got != (common.Vec3{X: 1}) {
		t.Fatalf("facing after stop = %+v", got)
	}
}

func TestAirborneStateFromSnapshots(t *testing.T) {
	h := NewHumanoid()
	h.UpdateState(ActorState{Position: common.Vec3{X: 200}, IsGrounded: false})
	if state, _ := h.Animation(); state != AnimationAirborne {
		t.Fatalf("animation = %v, want airborne", state)
	}

	h.UpdateState(ActorState{Position: common.Vec3{X: 200}, IsGrounded: true})
	if state, _ := h.Animation(); state != AnimationIdle {
		t.Fatalf("animation = %v, want idle after landing", state)
	}
}

func TestAnimationTimerResetsOnStateChange(t *testing.T) {
	h := NewHumanoid()
	h.SetMovementDirection(common.Vec3{Z: 1}, false)
	h.Update(0.5)
	if _, elapsed := h.Animation(); elapsed != 0.5 {
		t.Fatalf("walk timer = %f, want 0.5", elapsed)
	}

	h.SetMovementDirection(common.Vec3{Z: 1}, true)
	if _, elapsed := h.Animation(); elapsed != 0 {
		t.Fatalf("run timer = %f, want reset to 0", elapsed)
	}
}

func TestDisposeHidesBody(t *testing.T) {
	h := NewHumanoid()
	h.SetVisible(true)
	h.Dispose()
	if h.Visible() {
		t.Fatal("disposed humanoid still visible")
	}
	h.Dispose()
}
