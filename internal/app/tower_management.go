// internal/app/tower_management.go
package app

import (
	"errors"
	"image"

	"corridor-defense/internal/component"
	"corridor-defense/internal/config"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/event"
	"corridor-defense/internal/types"
	"corridor-defense/pkg/gridpath"

	"github.com/sirupsen/logrus"
)

// Причины отказа в постройке башни.
var (
	ErrGameOver         = errors.New("game is over")
	ErrUnknownArchetype = errors.New("unknown tower archetype")
	ErrInsufficientGold = errors.New("not enough gold")
	ErrOutOfBounds      = errors.New("cell is outside the board")
	ErrOnPath           = errors.New("cell is on the monster path")
	ErrReservedArea     = errors.New("cell overlaps an interface panel")
	ErrOccupied         = errors.New("cell is already occupied by a tower")
)

// CanPlaceTower проверяет постройку, ничего не меняя. Порядок проверок
// совпадает с PlaceTower, так что превью и постройка согласованы.
func (g *Game) CanPlaceTower(kind defs.TowerKind, cell gridpath.Cell) error {
	_, err := g.checkPlacement(kind, cell)
	return err
}

// PlaceTower attempts to place a tower at the given cell.
// При ошибке состояние не меняется.
func (g *Game) PlaceTower(kind defs.TowerKind, cell gridpath.Cell) (types.EntityID, error) {
	def, err := g.checkPlacement(kind, cell)
	if err != nil {
		g.log.WithFields(logrus.Fields{"kind": kind, "x": cell.X, "y": cell.Y}).WithError(err).Debug("Tower placement rejected")
		return 0, err
	}

	g.ECS.Player.Gold -= def.Cost
	entity.AssertGold(g.ECS.Player.Gold)

	id := g.createTowerEntity(def, cell)
	g.towerCells[cell] = id

	g.log.WithFields(logrus.Fields{
		"id":   id,
		"kind": kind,
		"x":    cell.X,
		"y":    cell.Y,
		"gold": g.ECS.Player.Gold,
	}).Info("Tower placed")
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: id, Kind: string(kind), Cost: def.Cost},
	})
	return id, nil
}

// TowerAt возвращает башню на клетке.
func (g *Game) TowerAt(cell gridpath.Cell) (types.EntityID, bool) {
	id, ok := g.towerCells[cell]
	return id, ok
}

// IsReserved проверяет, перекрывает ли клетка какую-нибудь панель интерфейса.
func (g *Game) IsReserved(cell gridpath.Cell) bool {
	size := g.Catalog.Board.CellSize
	x, y := cell.Origin(size)
	rect := image.Rect(int(x), int(y), int(x+size), int(y+size))
	for _, area := range g.reserved {
		if rect.Overlaps(area) {
			return true
		}
	}
	return false
}

func (g *Game) checkPlacement(kind defs.TowerKind, cell gridpath.Cell) (defs.TowerDefinition, error) {
	if !g.StateSystem.IsPlaying() {
		return defs.TowerDefinition{}, ErrGameOver
	}
	def, ok := g.Catalog.Tower(kind)
	if !ok {
		return defs.TowerDefinition{}, ErrUnknownArchetype
	}
	if g.ECS.Player.Gold < def.Cost {
		return def, ErrInsufficientGold
	}
	if !cell.InBounds(g.Catalog.Board.Columns, g.Catalog.Board.Rows) {
		return def, ErrOutOfBounds
	}
	if g.Path.Contains(cell) {
		return def, ErrOnPath
	}
	if g.IsReserved(cell) {
		return def, ErrReservedArea
	}
	if _, taken := g.towerCells[cell]; taken {
		return def, ErrOccupied
	}
	return def, nil
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, cell gridpath.Cell) types.EntityID {
	id := g.ECS.NewEntity()
	x, y := cell.Center(g.Catalog.Board.CellSize)

	var effect *defs.EffectDefinition
	if def.Effect != nil {
		e := *def.Effect
		effect = &e
	}

	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		Kind:   def.Kind,
		Cell:   cell,
		Cost:   def.Cost,
		Effect: effect,
	}
	g.ECS.Combats[id] = &component.Combat{
		Damage:          def.Damage,
		Range:           def.Range,
		AttackInterval:  def.AttackInterval,
		ProjectileSpeed: def.ProjectileSpeed,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.TowerColors[string(def.Kind)],
		Radius:    float32(g.Catalog.Board.CellSize * config.TowerRadiusFactor),
		HasStroke: true,
	}
	g.ECS.RegisterTower(id)
	return id
}
