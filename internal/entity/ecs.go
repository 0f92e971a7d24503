// internal/entity/ecs.go
package entity

import (
	"time"

	"corridor-defense/internal/component"
	"corridor-defense/internal/types"
)

// ECS — единственное хранилище состояния сессии. Системы пишут в него
// по очереди внутри одного тика, снаружи его меняют только между тиками.
// Порядок вставки монстров, башен и снарядов хранится отдельно:
// выбор цели и обход снарядов должны быть детерминированы.
type ECS struct {
	GameTime time.Duration
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Towers        map[types.EntityID]*component.Tower
	Projectiles   map[types.EntityID]*component.Projectile
	Combats       map[types.EntityID]*component.Combat
	Enemies       map[types.EntityID]*component.Enemy
	StatusEffects map[types.EntityID][]component.SpecialEffect

	MonsterOrder    []types.EntityID
	TowerOrder      []types.EntityID
	ProjectileOrder []types.EntityID

	Player component.Player
	Wave   *component.Wave
	Status component.GameStatus
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Towers:        make(map[types.EntityID]*component.Tower),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Combats:       make(map[types.EntityID]*component.Combat),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		StatusEffects: make(map[types.EntityID][]component.SpecialEffect),
		Wave:          &component.Wave{},
		Status:        component.StatusPlaying,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RegisterMonster добавляет монстра в порядок обхода. Компоненты заполняет вызывающий.
func (ecs *ECS) RegisterMonster(id types.EntityID) {
	ecs.MonsterOrder = append(ecs.MonsterOrder, id)
}

func (ecs *ECS) RegisterTower(id types.EntityID) {
	ecs.TowerOrder = append(ecs.TowerOrder, id)
}

func (ecs *ECS) RegisterProjectile(id types.EntityID) {
	ecs.ProjectileOrder = append(ecs.ProjectileOrder, id)
}

// IsMonster сообщает, жив ли монстр с таким id.
func (ecs *ECS) IsMonster(id types.EntityID) bool {
	_, ok := ecs.Enemies[id]
	return ok
}

// RemoveMonster удаляет монстра и все снаряды, летящие в него.
func (ecs *ECS) RemoveMonster(id types.EntityID) {
	if !ecs.IsMonster(id) {
		return
	}
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.StatusEffects, id)
	ecs.MonsterOrder = removeID(ecs.MonsterOrder, id)

	for _, pid := range ecs.ProjectileIDs() {
		if p := ecs.Projectiles[pid]; p != nil && p.TargetID == id {
			ecs.RemoveProjectile(pid)
		}
	}
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	if _, ok := ecs.Projectiles[id]; !ok {
		return
	}
	delete(ecs.Positions, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	ecs.ProjectileOrder = removeID(ecs.ProjectileOrder, id)
}

// MonsterIDs возвращает копию порядка монстров, её можно обходить с удалением.
func (ecs *ECS) MonsterIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.MonsterOrder...)
}

func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.ProjectileOrder...)
}

// MonsterCount — число живых монстров.
func (ecs *ECS) MonsterCount() int {
	return len(ecs.MonsterOrder)
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
