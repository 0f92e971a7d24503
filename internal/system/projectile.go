// internal/system/projectile.go
package system

import (
	"math"
	"time"

	"corridor-defense/internal/config"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/event"
	"corridor-defense/internal/types"
	"corridor-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	effects         *StatusEffectSystem
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, effects *StatusEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		effects:         effects,
	}
}

// Update двигает снаряды к текущей позиции цели. Урон за тик суммируется
// по цели и применяется один раз в конце.
func (s *ProjectileSystem) Update(now time.Duration) {
	damage := make(map[types.EntityID]int)
	var hitOrder []types.EntityID

	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if proj == nil || pos == nil {
			s.ecs.RemoveProjectile(id)
			continue
		}

		// Цель пропала, снаряд исчезает без эффекта
		targetPos, alive := s.ecs.Positions[proj.TargetID]
		if !alive || !s.ecs.IsMonster(proj.TargetID) {
			s.ecs.RemoveProjectile(id)
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Hypot(dx, dy)

		if dist <= math.Max(config.ProjectileHitRadius, proj.Speed) {
			if _, seen := damage[proj.TargetID]; !seen {
				hitOrder = append(hitOrder, proj.TargetID)
			}
			damage[proj.TargetID] += proj.Damage
			if proj.Effect != nil {
				s.effects.Apply(proj.TargetID, *proj.Effect, now)
			}
			s.ecs.RemoveProjectile(id)
			continue
		}

		pos.X += dx / dist * proj.Speed
		pos.Y += dy / dist * proj.Speed
	}

	for _, targetID := range hitOrder {
		hp, ok := ApplyDamage(s.ecs, targetID, damage[targetID])
		if !ok || hp > 0 {
			continue
		}
		s.killMonster(targetID)
	}
}

func (s *ProjectileSystem) killMonster(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	reward := enemy.Reward
	defID := enemy.DefID

	s.ecs.Player.Gold += reward
	s.ecs.RemoveMonster(id)

	logger.Log.WithFields(logrus.Fields{"id": id, "monster": defID, "reward": reward}).Debug("Monster killed")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MonsterKilled,
		Data: event.MonsterData{ID: id, DefID: defID, Reward: reward},
	})
}
