package system

import (
	"errors"
	"testing"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
)

func newMover(x, y float64) (*entity.ECS, *MotionSystem, types.EntityID) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: component.Position{X: x, Y: y}}
	return ecs, NewMotionSystem(ecs), id
}

func TestMoveDurationIsDistanceOverSpeed(t *testing.T) {
	ecs, motion, id := newMover(0, 0)
	done := false
	if err := motion.MoveTo(id, component.Position{X: 300}, 150, func() { done = true }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	motion.Update(1)
	if done {
		t.Fatalf("expected motion to be in progress after 1s of 2s")
	}
	if x := ecs.Transforms[id].Position.X; !almostEqual(x, 150) {
		t.Errorf("expected x=150 halfway, got %f", x)
	}

	motion.Update(1)
	if !done {
		t.Fatalf("expected motion complete after 2s")
	}
	if x := ecs.Transforms[id].Position.X; x != 300 {
		t.Errorf("expected x=300, got %f", x)
	}
}

func TestRotateDurationIsAngleOverSpeed(t *testing.T) {
	ecs, motion, id := newMover(0, 0)
	done := false
	// Цель ниже по экрану: пеленг -90, поворот на 90 градусов за 0.3.
	if err := motion.RotateTo(id, component.Position{X: 0, Y: 100}, 300, 0, func() { done = true }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	motion.Update(0.15)
	if done {
		t.Fatalf("expected rotation in progress")
	}
	if a := ecs.Transforms[id].Angle; !almostEqual(a, -45) {
		t.Errorf("expected angle -45 halfway, got %f", a)
	}
	motion.Update(0.15)
	if !done {
		t.Fatalf("expected rotation complete after 0.3")
	}
	if a := ecs.Transforms[id].Angle; !almostEqual(a, -90) {
		t.Errorf("expected angle -90, got %f", a)
	}
}

func TestRotateTakesShortestArc(t *testing.T) {
	ecs, motion, id := newMover(0, 0)
	ecs.Transforms[id].Angle = 170
	// Пеленг на (-100, 10) около -174: кратчайший путь через 180, около 16 градусов.
	if err := motion.RotateTo(id, component.Position{X: -100, Y: 10}, 160, 0, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	motion.Update(0.05)
	if a := ecs.Transforms[id].Angle; a < 170 {
		t.Errorf("expected rotation to go past 170 towards 180, got %f", a)
	}
	motion.Update(1)
	if motion.IsMoving(id) {
		t.Fatalf("expected rotation finished")
	}
	if a := ecs.Transforms[id].Angle; a > 0 || a < -180 {
		t.Errorf("expected normalised negative bearing, got %f", a)
	}
}

func TestZeroMotionCompletesImmediately(t *testing.T) {
	_, motion, id := newMover(10, 10)

	moved := false
	if err := motion.MoveTo(id, component.Position{X: 10, Y: 10}, 100, func() { moved = true }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !moved {
		t.Errorf("expected zero-distance move to complete synchronously")
	}

	rotated := false
	if err := motion.RotateTo(id, component.Position{X: 50, Y: 10}, 300, 0, func() { rotated = true }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rotated {
		t.Errorf("expected zero-angle rotation to complete synchronously")
	}
	if n := motion.Pending(id); n != 0 {
		t.Errorf("expected nothing scheduled, got %d", n)
	}
}

func TestInvalidSpeedIsRejected(t *testing.T) {
	_, motion, id := newMover(0, 0)
	if err := motion.MoveTo(id, component.Position{X: 10}, 0, nil); !errors.Is(err, ErrInvalidSpeed) {
		t.Errorf("expected ErrInvalidSpeed for move, got %v", err)
	}
	if err := motion.RotateTo(id, component.Position{Y: 10}, -5, 0, nil); !errors.Is(err, ErrInvalidSpeed) {
		t.Errorf("expected ErrInvalidSpeed for rotate, got %v", err)
	}
	if err := motion.MoveTo(999, component.Position{X: 10}, 10, nil); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("expected ErrUnknownEntity, got %v", err)
	}
}

func TestCancelDropsContinuations(t *testing.T) {
	_, motion, id := newMover(0, 0)
	fired := 0
	motion.MoveTo(id, component.Position{X: 100}, 100, func() { fired++ })
	motion.After(id, 0.5, func() { fired++ })

	motion.Cancel(id)
	motion.Update(10)

	if fired != 0 {
		t.Errorf("expected no continuation after cancel, got %d", fired)
	}
	if motion.IsMoving(id) {
		t.Errorf("expected no motion left")
	}
}

func TestLeftoverTimeCarriesToContinuation(t *testing.T) {
	ecs, motion, id := newMover(0, 0)
	motion.MoveTo(id, component.Position{X: 150}, 150, func() {
		motion.MoveTo(id, component.Position{X: 300}, 150, nil)
	})

	motion.Update(1.5)
	if x := ecs.Transforms[id].Position.X; !almostEqual(x, 225) {
		t.Errorf("expected x=225 with carried time, got %f", x)
	}
}

func TestNewMotionReplacesCurrent(t *testing.T) {
	ecs, motion, id := newMover(0, 0)
	first := false
	motion.MoveTo(id, component.Position{X: 100}, 100, func() { first = true })
	motion.Update(0.5)
	motion.MoveTo(id, component.Position{X: 50, Y: 100}, 100, nil)
	motion.Update(10)

	if first {
		t.Errorf("expected replaced motion never to complete")
	}
	if p := ecs.Transforms[id].Position; p.X != 50 || p.Y != 100 {
		t.Errorf("expected (50,100), got %+v", p)
	}
}

func TestScaledTimeDrivesMotion(t *testing.T) {
	run := func(scale float64) int {
		_, motion, id := newMover(0, 0)
		tc := NewTimeController()
		if err := tc.SetScale(scale); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		done := false
		motion.MoveTo(id, component.Position{X: 200}, 100, func() { done = true })
		for tick := 1; tick <= 100; tick++ {
			motion.Update(tc.Tick(0.1))
			if done {
				return tick
			}
		}
		return -1
	}

	if got := run(1); got != 20 {
		t.Errorf("expected 20 ticks at x1, got %d", got)
	}
	if got := run(2); got != 10 {
		t.Errorf("expected 10 ticks at x2, got %d", got)
	}
	if got := run(0); got != -1 {
		t.Errorf("expected no completion at scale 0, got %d", got)
	}
}

func TestTimerFiresOnScaledTime(t *testing.T) {
	_, motion, id := newMover(0, 0)
	fired := false
	motion.After(id, 0.1, func() { fired = true })

	motion.Update(0.05)
	if fired {
		t.Fatalf("expected timer pending after 0.05")
	}
	motion.Update(0.05)
	if !fired {
		t.Errorf("expected timer fired after 0.1")
	}
}
