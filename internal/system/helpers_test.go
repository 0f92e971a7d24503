package system

import (
	"testing"

	"corridor-defense/internal/component"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/event"
	"corridor-defense/internal/types"
	"corridor-defense/internal/utils"
	"corridor-defense/pkg/gridpath"
)

// Коридор: (0,0) -> (3,0) -> (3,2), центры клеток
// (20,20) (60,20) (100,20) (140,20) (140,60) (140,100).
const testCatalog = `
board: {columns: 10, rows: 5, cell_size: 40}
player: {initial_health: 20, initial_gold: 500}
monsters:
  - {id: grunt, kind: NORMAL, hp: 30, speed: 4, contact_damage: 5, width: 40, height: 40, reward: 10}
  - {id: brute, kind: ELITE, hp: 90, speed: 2, contact_damage: 15, width: 40, height: 40, reward: 30}
towers:
  - {kind: NORMAL, name: Basic, cost: 100, damage: 10, range: 200, attack_interval: 500ms, projectile_speed: 50}
  - kind: SLOW
    name: Frost
    cost: 150
    damage: 1
    range: 200
    attack_interval: 1s
    projectile_speed: 50
    effect: {type: SLOW, value: 0.5, duration: 1s}
waves:
  - spawn_interval: 100ms
    monsters:
      - {monster: grunt, count: 2}
      - {monster: brute, count: 1}
  - spawn_interval: 100ms
    monsters:
      - {monster: grunt, count: 1}
patterns:
  - [{x: 0, y: 0}, {x: 3, y: 0}, {x: 3, y: 2}]
`

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

type fixture struct {
	ecs        *entity.ECS
	catalog    *defs.Catalog
	path       *gridpath.Path
	dispatcher *event.Dispatcher
	events     *recorder

	effects    *StatusEffectSystem
	state      *StateSystem
	spawn      *SpawnSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	movement   *MovementSystem
	wave       *WaveSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog, err := defs.ParseCatalog([]byte(testCatalog))
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}

	ecs := entity.NewECS()
	ecs.Player = component.Player{Health: catalog.Player.InitialHealth, Gold: catalog.Player.InitialGold}
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	for _, et := range []event.EventType{
		event.MonsterSpawned, event.MonsterKilled, event.MonsterArrived,
		event.WaveStarted, event.Victory, event.Defeat,
	} {
		dispatcher.Subscribe(et, rec)
	}

	path := gridpath.Build(catalog.Patterns[0], catalog.Board.CellSize)
	f := &fixture{
		ecs:        ecs,
		catalog:    catalog,
		path:       path,
		dispatcher: dispatcher,
		events:     rec,
	}
	f.effects = NewStatusEffectSystem(ecs)
	f.state = NewStateSystem(ecs, dispatcher)
	f.spawn = NewSpawnSystem(ecs, catalog, path, utils.NewPRNGService(1), dispatcher)
	f.combat = NewCombatSystem(ecs)
	f.projectile = NewProjectileSystem(ecs, dispatcher, f.effects)
	f.movement = NewMovementSystem(ecs, path, f.effects, dispatcher)
	f.wave = NewWaveSystem(ecs, catalog, f.spawn, f.state)
	return f
}

func (f *fixture) addMonster(x, y, speed float64, hp int) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	f.ecs.Paths[id] = &component.Path{}
	f.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	f.ecs.Enemies[id] = &component.Enemy{
		DefID:         "grunt",
		Kind:          defs.MonsterNormal,
		ContactDamage: 5,
		Width:         40,
		Height:        40,
		Reward:        10,
	}
	f.ecs.RegisterMonster(id)
	return id
}

func (f *fixture) addTower(x, y float64, combat component.Combat) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Combats[id] = &combat
	f.ecs.Towers[id] = &component.Tower{Kind: defs.TowerNormal}
	f.ecs.RegisterTower(id)
	return id
}

func (f *fixture) addProjectile(x, y float64, target types.EntityID, damage int, speed float64) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Projectiles[id] = &component.Projectile{
		TargetID: target,
		Kind:     defs.TowerNormal,
		Damage:   damage,
		Speed:    speed,
	}
	f.ecs.RegisterProjectile(id)
	return id
}
