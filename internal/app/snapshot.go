// internal/app/snapshot.go
package app

import (
	"time"

	"corridor-defense/internal/component"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/system"
	"corridor-defense/internal/types"
	"corridor-defense/pkg/gridpath"
)

// Snapshot — неизменяемая копия состояния после тика. Её читают
// отрисовка и отладочный сервер, ссылок на ECS в ней нет.
type Snapshot struct {
	SessionID   string               `json:"session_id"`
	GameTime    time.Duration        `json:"game_time"`
	Health      int                  `json:"health"`
	Gold        int                  `json:"gold"`
	Wave        int                  `json:"wave"`
	TotalWaves  int                  `json:"total_waves"`
	Status      component.GameStatus `json:"status"`
	Monsters    []MonsterView        `json:"monsters"`
	Towers      []TowerView          `json:"towers"`
	Projectiles []ProjectileView     `json:"projectiles"`
}

type MonsterView struct {
	ID        types.EntityID   `json:"id"`
	Kind      defs.MonsterKind `json:"kind"`
	X         float64          `json:"x"`
	Y         float64          `json:"y"`
	HP        int              `json:"hp"`
	MaxHP     int              `json:"max_hp"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	PathIndex int              `json:"path_index"`
	Slowed    bool             `json:"slowed"`
	Radius    float32          `json:"radius"`
	Outlined  bool             `json:"outlined"`
}

type TowerView struct {
	ID    types.EntityID `json:"id"`
	Kind  defs.TowerKind `json:"kind"`
	Cell  gridpath.Cell  `json:"cell"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Range float64        `json:"range"`
}

type ProjectileView struct {
	ID       types.EntityID `json:"id"`
	Kind     defs.TowerKind `json:"kind"`
	TargetID types.EntityID `json:"target_id"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Radius   float32        `json:"radius"`
}

// Snapshot собирает снимок в порядке вставки сущностей.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	now := ecs.GameTime

	s := Snapshot{
		SessionID:   g.SessionID.String(),
		GameTime:    now,
		Health:      ecs.Player.Health,
		Gold:        ecs.Player.Gold,
		Wave:        ecs.Wave.Index,
		TotalWaves:  len(g.Catalog.Waves),
		Status:      ecs.Status,
		Monsters:    make([]MonsterView, 0, len(ecs.MonsterOrder)),
		Towers:      make([]TowerView, 0, len(ecs.TowerOrder)),
		Projectiles: make([]ProjectileView, 0, len(ecs.ProjectileOrder)),
	}

	for _, id := range ecs.MonsterOrder {
		pos, health, enemy := ecs.Positions[id], ecs.Healths[id], ecs.Enemies[id]
		if pos == nil || health == nil || enemy == nil {
			continue
		}
		view := MonsterView{
			ID:     id,
			Kind:   enemy.Kind,
			X:      pos.X,
			Y:      pos.Y,
			HP:     health.Value,
			MaxHP:  health.Max,
			Width:  enemy.Width,
			Height: enemy.Height,
		}
		if p := ecs.Paths[id]; p != nil {
			view.PathIndex = p.CurrentIndex
		}
		if r := ecs.Renderables[id]; r != nil {
			view.Radius = r.Radius
			view.Outlined = r.HasStroke
		}
		_, view.Slowed = system.FindEffect(system.ActiveEffects(ecs.StatusEffects[id], now), defs.EffectSlow)
		s.Monsters = append(s.Monsters, view)
	}

	for _, id := range ecs.TowerOrder {
		pos, tower, combat := ecs.Positions[id], ecs.Towers[id], ecs.Combats[id]
		if pos == nil || tower == nil || combat == nil {
			continue
		}
		s.Towers = append(s.Towers, TowerView{
			ID:    id,
			Kind:  tower.Kind,
			Cell:  tower.Cell,
			X:     pos.X,
			Y:     pos.Y,
			Range: combat.Range,
		})
	}

	for _, id := range ecs.ProjectileOrder {
		pos, proj := ecs.Positions[id], ecs.Projectiles[id]
		if pos == nil || proj == nil {
			continue
		}
		view := ProjectileView{
			ID:       id,
			Kind:     proj.Kind,
			TargetID: proj.TargetID,
			X:        pos.X,
			Y:        pos.Y,
		}
		if r := ecs.Renderables[id]; r != nil {
			view.Radius = r.Radius
		}
		s.Projectiles = append(s.Projectiles, view)
	}
	return s
}

// PathPoints возвращает копию точек коридора сессии.
func (g *Game) PathPoints() []gridpath.PathPoint {
	return g.Path.Points()
}
