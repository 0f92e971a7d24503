package app

import (
	"errors"
	"image"
	"testing"

	"corridor-defense/internal/defs"
	"corridor-defense/internal/event"
	"corridor-defense/pkg/gridpath"
)

func TestPlaceTowerRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		kind  defs.TowerKind
		cell  gridpath.Cell
		want  error
	}{
		{"unknown archetype", nil, defs.TowerKind("LASER"), gridpath.Cell{X: 1, Y: 0}, ErrUnknownArchetype},
		{"not enough gold", func(g *Game) { g.ECS.Player.Gold = 49 }, defs.TowerNormal, gridpath.Cell{X: 1, Y: 0}, ErrInsufficientGold},
		{"gold checked before bounds", func(g *Game) { g.ECS.Player.Gold = 0 }, defs.TowerNormal, gridpath.Cell{X: -1, Y: 0}, ErrInsufficientGold},
		{"left of board", nil, defs.TowerNormal, gridpath.Cell{X: -1, Y: 0}, ErrOutOfBounds},
		{"below board", nil, defs.TowerNormal, gridpath.Cell{X: 0, Y: 6}, ErrOutOfBounds},
		{"on path", nil, defs.TowerNormal, gridpath.Cell{X: 4, Y: 2}, ErrOnPath},
		{"occupied", func(g *Game) {
			if _, err := g.PlaceTower(defs.TowerNormal, gridpath.Cell{X: 1, Y: 0}); err != nil {
				panic(err)
			}
		}, defs.TowerNormal, gridpath.Cell{X: 1, Y: 0}, ErrOccupied},
		{"game over", func(g *Game) { g.StateSystem.Lose() }, defs.TowerNormal, gridpath.Cell{X: 1, Y: 0}, ErrGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, scenarioCatalog)
			if tt.setup != nil {
				tt.setup(g)
			}
			gold := g.ECS.Player.Gold
			towers := len(g.ECS.TowerOrder)

			if err := g.CanPlaceTower(tt.kind, tt.cell); !errors.Is(err, tt.want) {
				t.Errorf("CanPlaceTower: got %v, want %v", err, tt.want)
			}
			id, err := g.PlaceTower(tt.kind, tt.cell)
			if !errors.Is(err, tt.want) {
				t.Fatalf("PlaceTower: got %v, want %v", err, tt.want)
			}
			if id != 0 {
				t.Errorf("got id %d on rejection, want 0", id)
			}
			if g.ECS.Player.Gold != gold || len(g.ECS.TowerOrder) != towers {
				t.Errorf("rejected placement changed state: gold %d -> %d, towers %d -> %d",
					gold, g.ECS.Player.Gold, towers, len(g.ECS.TowerOrder))
			}
		})
	}
}

func TestPlaceTowerReservedArea(t *testing.T) {
	catalog, err := defs.ParseCatalog([]byte(scenarioCatalog))
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(catalog, Options{Seed: 1, Reserved: []image.Rectangle{image.Rect(0, 0, 80, 40)}})

	if _, err := g.PlaceTower(defs.TowerNormal, gridpath.Cell{X: 1, Y: 0}); !errors.Is(err, ErrReservedArea) {
		t.Errorf("got %v, want %v", err, ErrReservedArea)
	}
	if !g.IsReserved(gridpath.Cell{X: 0, Y: 0}) {
		t.Error("cell (0,0) not reserved")
	}
	// Касание границы панели не считается перекрытием
	if _, err := g.PlaceTower(defs.TowerNormal, gridpath.Cell{X: 2, Y: 0}); err != nil {
		t.Errorf("got %v for a cell next to the panel, want nil", err)
	}
}

func TestDefaultReservedAreasApplyWhenNil(t *testing.T) {
	g := NewGame(defs.MustDefault(), Options{Seed: 1})
	if !g.IsReserved(gridpath.Cell{X: 0, Y: 0}) {
		t.Error("info panel corner is not reserved by default")
	}
}

func TestPlaceTowerSuccess(t *testing.T) {
	g := newTestGame(t, scenarioCatalog)
	events := subscribeAll(g)
	cell := gridpath.Cell{X: 3, Y: 4}

	id, err := g.PlaceTower(defs.TowerSlow, cell)
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if g.ECS.Player.Gold != 20 {
		t.Errorf("got gold %d, want 20", g.ECS.Player.Gold)
	}
	if got, ok := g.TowerAt(cell); !ok || got != id {
		t.Errorf("TowerAt: got (%d, %v), want (%d, true)", got, ok, id)
	}
	pos := g.ECS.Positions[id]
	if x, y := cell.Center(40); pos.X != x || pos.Y != y {
		t.Errorf("got tower at (%v, %v), want cell center (%v, %v)", pos.X, pos.Y, x, y)
	}
	if events[event.TowerPlaced] != 1 {
		t.Errorf("got %d TowerPlaced events, want 1", events[event.TowerPlaced])
	}

	// Шаблон эффекта копируется, каталог не делит память с башней
	tower := g.ECS.Towers[id]
	def, _ := g.Catalog.Tower(defs.TowerSlow)
	if tower.Effect == nil || tower.Effect == def.Effect {
		t.Errorf("got effect %p, want a copy of %p", tower.Effect, def.Effect)
	}
	if combat := g.ECS.Combats[id]; combat.Range != def.Range || combat.Damage != def.Damage {
		t.Errorf("got combat %+v, want values from the catalog", combat)
	}
}

func TestGoldConservedAcrossPlacements(t *testing.T) {
	g := newTestGame(t, scenarioCatalog)
	spent := 0
	for _, c := range []gridpath.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}} {
		if _, err := g.PlaceTower(defs.TowerNormal, c); err == nil {
			spent += 50
		}
	}
	if spent != 100 {
		t.Fatalf("got %d spent, want 100 (two towers)", spent)
	}
	if g.ECS.Player.Gold != 0 {
		t.Errorf("got gold %d, want 0", g.ECS.Player.Gold)
	}
}
