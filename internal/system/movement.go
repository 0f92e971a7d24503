// internal/system/movement.go
package system

import (
	"math"
	"time"

	"corridor-defense/internal/component"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/event"
	"corridor-defense/internal/types"
	"corridor-defense/internal/utils"
	"corridor-defense/pkg/gridpath"
	"corridor-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MovementSystem ведёт монстров по коридору
type MovementSystem struct {
	ecs             *entity.ECS
	path            *gridpath.Path
	effects         *StatusEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path *gridpath.Path, effects *StatusEffectSystem, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		path:            path,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

// Update двигает всех монстров на один тик и возвращает урон игроку,
// накопленный от дошедших до конца монстров. Урон уже вычтен из здоровья.
func (s *MovementSystem) Update(now time.Duration) int {
	healthLoss := 0

	for _, id := range s.ecs.MonsterIDs() {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		path := s.ecs.Paths[id]
		enemy := s.ecs.Enemies[id]
		if pos == nil || vel == nil || path == nil || enemy == nil {
			continue
		}

		effects := s.effects.Refresh(id, now)
		speed := vel.Speed * SpeedMultiplier(effects)

		index := s.locate(pos, path.CurrentIndex)
		entity.AssertPathIndex(id, path.CurrentIndex, index)
		path.CurrentIndex = index

		if index < s.path.LastIndex() {
			s.step(pos, s.path.At(index+1), speed)
		}

		if s.arrived(pos, enemy) {
			healthLoss += enemy.ContactDamage
			s.arrive(id, enemy)
		}
	}

	s.ecs.Player.Health -= healthLoss
	return healthLoss
}

// locate ищет вперёд от сохранённого индекса первую точку пути ближе одной клетки.
func (s *MovementSystem) locate(pos *component.Position, from int) int {
	cell := s.path.CellSize()
	for i := from; i < s.path.Len(); i++ {
		p := s.path.At(i)
		if math.Hypot(p.X-pos.X, p.Y-pos.Y) < cell {
			return i
		}
	}
	return from
}

// step: сначала по X, потом по Y, без диагоналей.
func (s *MovementSystem) step(pos *component.Position, target gridpath.PathPoint, speed float64) {
	if math.Hypot(target.X-pos.X, target.Y-pos.Y) < speed {
		pos.X, pos.Y = target.X, target.Y
		return
	}
	if pos.X != target.X {
		pos.X, _ = utils.StepToward(pos.X, target.X, speed)
		return
	}
	pos.Y, _ = utils.StepToward(pos.Y, target.Y, speed)
}

// arrived: монстр в пределах половины своих размеров от конечной точки.
func (s *MovementSystem) arrived(pos *component.Position, enemy *component.Enemy) bool {
	end := s.path.End()
	return math.Abs(pos.X-end.X) <= enemy.Width/2 && math.Abs(pos.Y-end.Y) <= enemy.Height/2
}

func (s *MovementSystem) arrive(id types.EntityID, enemy *component.Enemy) {
	damage := enemy.ContactDamage
	defID := enemy.DefID
	s.ecs.RemoveMonster(id)

	logger.Log.WithFields(logrus.Fields{"id": id, "monster": defID, "damage": damage}).Debug("Monster reached the end")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MonsterArrived,
		Data: event.MonsterData{ID: id, DefID: defID, Damage: damage},
	})
}
