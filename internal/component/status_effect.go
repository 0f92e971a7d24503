// internal/component/status_effect.go
package component

import (
	"time"

	"corridor-defense/internal/defs"
)

// SpecialEffect — временный модификатор монстра.
type SpecialEffect struct {
	Type      defs.EffectType
	Value     float64 // множитель, например 0.5 для замедления вдвое
	Duration  time.Duration
	AppliedAt time.Duration
}

// Expired: эффект истёк, когда now >= AppliedAt + Duration.
func (e SpecialEffect) Expired(now time.Duration) bool {
	return now >= e.AppliedAt+e.Duration
}

// NewSpecialEffect создаёт свежую копию шаблона эффекта.
func NewSpecialEffect(def defs.EffectDefinition, now time.Duration) SpecialEffect {
	return SpecialEffect{
		Type:      def.Type,
		Value:     def.Value,
		Duration:  def.Duration,
		AppliedAt: now,
	}
}
