// internal/system/motion.go
package system

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go-tower-siege/internal/component"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/types"
	"go-tower-siege/internal/utils"
)

var (
	// ErrInvalidSpeed возвращается при неположительной скорости движения или поворота.
	ErrInvalidSpeed = errors.New("speed must be positive")
	// ErrUnknownEntity возвращается, если у сущности нет Transform.
	ErrUnknownEntity = errors.New("unknown entity")
)

type motionKind int

const (
	motionMove motionKind = iota
	motionRotate
)

// motion — запись об отложенном движении одной сущности.
type motion struct {
	kind      motionKind
	seq       uint64
	elapsed   float64
	duration  float64
	fromPos   component.Position
	toPos     component.Position
	fromAngle float64
	toAngle   float64
	onDone    func()
}

func (m *motion) apply(tr *component.Transform) {
	t := 1.0
	if m.duration > 0 {
		t = math.Min(m.elapsed/m.duration, 1)
	}
	switch m.kind {
	case motionMove:
		tr.Position = m.fromPos.Lerp(m.toPos, t)
		if t >= 1 {
			tr.Position = m.toPos
		}
	case motionRotate:
		tr.Angle = utils.Lerp(m.fromAngle, m.toAngle, t)
		if t >= 1 {
			tr.Angle = utils.NormalizeDegrees(m.toAngle)
		}
	}
}

type timer struct {
	owner     types.EntityID
	remaining float64
	fn        func()
}

// MotionSystem выполняет движения к точке и повороты к точке.
// У каждой сущности не больше одного активного движения: новое заменяет старое.
// Update получает уже масштабированный шаг времени.
type MotionSystem struct {
	ecs     *entity.ECS
	motions map[types.EntityID]*motion
	timers  map[uint64]*timer
	nextSeq uint64
}

func NewMotionSystem(ecs *entity.ECS) *MotionSystem {
	return &MotionSystem{
		ecs:     ecs,
		motions: make(map[types.EntityID]*motion),
		timers:  make(map[uint64]*timer),
	}
}

func (s *MotionSystem) seq() uint64 {
	s.nextSeq++
	return s.nextSeq
}

// MoveTo двигает сущность к target за distance/speed единиц времени.
// Нулевое расстояние завершается сразу, без записи в планировщике.
func (s *MotionSystem) MoveTo(id types.EntityID, target component.Position, speed float64, onDone func()) error {
	if speed <= 0 || math.IsNaN(speed) {
		return fmt.Errorf("%w: move speed %.2f", ErrInvalidSpeed, speed)
	}
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	delete(s.motions, id)

	distance := tr.Position.DistanceTo(target)
	if distance == 0 {
		if onDone != nil {
			onDone()
		}
		return nil
	}
	s.motions[id] = &motion{
		kind:     motionMove,
		seq:      s.seq(),
		duration: distance / speed,
		fromPos:  tr.Position,
		toPos:    target,
		onDone:   onDone,
	}
	return nil
}

// RotateTo поворачивает сущность лицом к target по кратчайшей дуге.
// offset — угол (в градусах) между "лицом" сущности и осью X+.
func (s *MotionSystem) RotateTo(id types.EntityID, target component.Position, angularSpeed, offset float64, onDone func()) error {
	if angularSpeed <= 0 || math.IsNaN(angularSpeed) {
		return fmt.Errorf("%w: angular speed %.2f", ErrInvalidSpeed, angularSpeed)
	}
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	delete(s.motions, id)

	destination := utils.Bearing(tr.Position.X, tr.Position.Y, target.X, target.Y) + offset
	delta := utils.ShortestAngleDelta(tr.Angle, destination)
	if delta == 0 {
		if onDone != nil {
			onDone()
		}
		return nil
	}
	s.motions[id] = &motion{
		kind:      motionRotate,
		seq:       s.seq(),
		duration:  math.Abs(delta) / angularSpeed,
		fromAngle: tr.Angle,
		toAngle:   tr.Angle + delta,
		onDone:    onDone,
	}
	return nil
}

// After вызывает fn через delay единиц времени симуляции.
// Возвращает идентификатор таймера для CancelTimer.
func (s *MotionSystem) After(owner types.EntityID, delay float64, fn func()) uint64 {
	if delay <= 0 {
		fn()
		return 0
	}
	id := s.seq()
	s.timers[id] = &timer{owner: owner, remaining: delay, fn: fn}
	return id
}

// CancelTimer снимает таймер, не вызывая его.
func (s *MotionSystem) CancelTimer(timerID uint64) {
	delete(s.timers, timerID)
}

// Cancel снимает все движения и таймеры сущности. Их продолжения не вызываются.
func (s *MotionSystem) Cancel(id types.EntityID) {
	delete(s.motions, id)
	for tid, t := range s.timers {
		if t.owner == id {
			delete(s.timers, tid)
		}
	}
}

// IsMoving — есть ли у сущности незавершённое движение.
func (s *MotionSystem) IsMoving(id types.EntityID) bool {
	_, ok := s.motions[id]
	return ok
}

// Velocity возвращает скорость текущего движения к точке.
// Для поворота и покоя ok = false.
func (s *MotionSystem) Velocity(id types.EntityID) (vx, vy float64, ok bool) {
	m, found := s.motions[id]
	if !found || m.kind != motionMove || m.duration <= 0 {
		return 0, 0, false
	}
	return (m.toPos.X - m.fromPos.X) / m.duration, (m.toPos.Y - m.fromPos.Y) / m.duration, true
}

// Pending возвращает число незавершённых движений и таймеров сущности.
func (s *MotionSystem) Pending(id types.EntityID) int {
	n := 0
	if _, ok := s.motions[id]; ok {
		n++
	}
	for _, t := range s.timers {
		if t.owner == id {
			n++
		}
	}
	return n
}

// Update продвигает движения в порядке их создания. Остаток шага после
// завершения движения достаётся следующему движению той же сущности,
// если продолжение его запустило.
func (s *MotionSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	// Таймеры, заведённые продолжениями на этом тике, начнут отсчёт со следующего.
	timerIDs := make([]uint64, 0, len(s.timers))
	for id := range s.timers {
		timerIDs = append(timerIDs, id)
	}

	ids := make([]types.EntityID, 0, len(s.motions))
	for id := range s.motions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return s.motions[ids[i]].seq < s.motions[ids[j]].seq })

	for _, id := range ids {
		budget := deltaTime
		for budget > 0 {
			m, ok := s.motions[id]
			if !ok {
				break
			}
			tr, ok := s.ecs.Transforms[id]
			if !ok {
				delete(s.motions, id)
				break
			}

			remaining := m.duration - m.elapsed
			if budget < remaining-timeEpsilon {
				m.elapsed += budget
				m.apply(tr)
				break
			}

			m.elapsed = m.duration
			m.apply(tr)
			budget -= remaining
			delete(s.motions, id)
			if m.onDone != nil {
				m.onDone()
			}
		}
	}

	s.updateTimers(deltaTime, timerIDs)
}

func (s *MotionSystem) updateTimers(deltaTime float64, ids []uint64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		t, ok := s.timers[id]
		if !ok {
			continue // снят колбэком предыдущего таймера
		}
		t.remaining -= deltaTime
		if t.remaining <= timeEpsilon {
			delete(s.timers, id)
			t.fn()
		}
	}
}
