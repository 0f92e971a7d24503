// internal/component/combat.go
package component

import "time"

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Damage          int
	Range           float64       // в пикселях
	AttackInterval  time.Duration // перезарядка
	LastAttackTime  time.Duration // игровое время последнего выстрела
	HasAttacked     bool          // первый выстрел не ждёт перезарядки
	ProjectileSpeed float64       // пиксели за тик
}

// Ready сообщает, может ли башня стрелять в момент now.
func (c *Combat) Ready(now time.Duration) bool {
	return !c.HasAttacked || now-c.LastAttackTime >= c.AttackInterval
}
