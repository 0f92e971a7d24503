// internal/system/status_effect.go
package system

import (
	"time"

	"corridor-defense/internal/component"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/types"
)

// ActiveEffects возвращает только неистёкшие эффекты, порядок сохраняется.
func ActiveEffects(effects []component.SpecialEffect, now time.Duration) []component.SpecialEffect {
	active := effects[:0:0]
	for _, e := range effects {
		if !e.Expired(now) {
			active = append(active, e)
		}
	}
	return active
}

// FindEffect ищет первый эффект заданного типа.
func FindEffect(effects []component.SpecialEffect, kind defs.EffectType) (component.SpecialEffect, bool) {
	for _, e := range effects {
		if e.Type == kind {
			return e, true
		}
	}
	return component.SpecialEffect{}, false
}

// ApplyEffect: новый эффект заменяет старый того же типа (последний победил).
func ApplyEffect(effects []component.SpecialEffect, e component.SpecialEffect) []component.SpecialEffect {
	out := make([]component.SpecialEffect, 0, len(effects)+1)
	for _, old := range effects {
		if old.Type != e.Type {
			out = append(out, old)
		}
	}
	return append(out, e)
}

// SpeedMultiplier — множитель скорости от активного замедления, 1 если его нет.
func SpeedMultiplier(effects []component.SpecialEffect) float64 {
	if slow, ok := FindEffect(effects, defs.EffectSlow); ok {
		return slow.Value
	}
	return 1
}

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Apply вешает на монстра свежую копию шаблона.
func (s *StatusEffectSystem) Apply(id types.EntityID, def defs.EffectDefinition, now time.Duration) {
	if !s.ecs.IsMonster(id) {
		return
	}
	s.ecs.StatusEffects[id] = ApplyEffect(s.ecs.StatusEffects[id], component.NewSpecialEffect(def, now))
}

// Refresh выкидывает истёкшие эффекты монстра и возвращает оставшиеся.
func (s *StatusEffectSystem) Refresh(id types.EntityID, now time.Duration) []component.SpecialEffect {
	effects, ok := s.ecs.StatusEffects[id]
	if !ok {
		return nil
	}
	active := ActiveEffects(effects, now)
	if len(active) == 0 {
		delete(s.ecs.StatusEffects, id)
		return nil
	}
	s.ecs.StatusEffects[id] = active
	return active
}
