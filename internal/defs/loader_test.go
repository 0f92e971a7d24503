package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"corridor-defense/pkg/gridpath"
)

const minimalCatalog = `
board: {columns: 10, rows: 8, cell_size: 40}
player: {initial_health: 20, initial_gold: 100}
monsters:
  - {id: grunt, kind: NORMAL, hp: 30, speed: 2, contact_damage: 5, width: 40, height: 40, reward: 10}
towers:
  - kind: SLOW
    name: Frost
    cost: 50
    damage: 5
    range: 80
    attack_interval: 750ms
    projectile_speed: 6
    effect: {type: SLOW, value: 0.5, duration: 2s}
waves:
  - spawn_interval: 500ms
    monsters:
      - {monster: grunt, count: 3}
patterns:
  - [{x: 0, y: 2}, {x: 9, y: 2}]
`

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
	if len(c.Waves) == 0 || len(c.Towers) == 0 || len(c.Patterns) == 0 {
		t.Fatalf("got %d waves, %d towers, %d patterns, want all non-empty", len(c.Waves), len(c.Towers), len(c.Patterns))
	}
	for _, kind := range []TowerKind{TowerNormal, TowerSlow} {
		if _, ok := c.Tower(kind); !ok {
			t.Errorf("tower %q missing from the embedded catalog", kind)
		}
	}
}

func TestDefaultPatternsBuildContiguousPaths(t *testing.T) {
	c := MustDefault()
	for i, pattern := range c.Patterns {
		p := gridpath.Build(pattern, c.Board.CellSize)
		if p.Len() < 2 {
			t.Errorf("pattern %d: got %d points, want at least 2", i, p.Len())
			continue
		}
		for j := 1; j < p.Len(); j++ {
			a, b := p.At(j-1), p.At(j)
			dx, dy := b.X-a.X, b.Y-a.Y
			if (dx != 0 && dy != 0) || dx*dx+dy*dy != c.Board.CellSize*c.Board.CellSize {
				t.Errorf("pattern %d: points %d -> %d are not neighbouring cells", i, j-1, j)
				break
			}
		}
	}
}

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(minimalCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}

	tower, ok := c.Tower(TowerSlow)
	if !ok {
		t.Fatal("SLOW tower not found")
	}
	if tower.AttackInterval != 750*time.Millisecond {
		t.Errorf("got attack interval %v, want 750ms", tower.AttackInterval)
	}
	if tower.Effect == nil || tower.Effect.Duration != 2*time.Second || tower.Effect.Value != 0.5 {
		t.Errorf("got effect %+v, want SLOW 0.5 for 2s", tower.Effect)
	}

	if _, ok := c.Monster("grunt"); !ok {
		t.Error("monster grunt not found")
	}
	if _, ok := c.Monster("ghost"); ok {
		t.Error("unknown monster resolved")
	}
	if _, ok := c.Tower(TowerNormal); ok {
		t.Error("NORMAL tower resolved, catalog has only SLOW")
	}

	w, ok := c.Wave(0)
	if !ok || w.Size() != 3 || w.SpawnInterval != 500*time.Millisecond {
		t.Errorf("got wave %+v (ok=%v), want 3 monsters every 500ms", w, ok)
	}
	if _, ok := c.Wave(1); ok {
		t.Error("wave past the catalog resolved")
	}
	if _, ok := c.Wave(-1); ok {
		t.Error("negative wave index resolved")
	}
}

func TestParseCatalogRejectsBrokenContent(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantMsg string
	}{
		{"unknown monster in wave", "{monster: grunt, count: 3}", "{monster: ghost, count: 3}", "unknown monster"},
		{"zero count", "{monster: grunt, count: 3}", "{monster: grunt, count: 0}", "count must be at least 1"},
		{"bad effect value", "value: 0.5", "value: 1.5", "effect value"},
		{"unknown tower kind", "kind: SLOW\n", "kind: LASER\n", "unknown kind"},
		{"diagonal pattern", "{x: 9, y: 2}", "{x: 9, y: 5}", "axis-aligned"},
		{"pattern off board", "{x: 9, y: 2}", "{x: 12, y: 2}", "outside"},
		{"no health", "initial_health: 20", "initial_health: 0", "initial_health"},
		{"zero damage", "\n    damage: 5\n", "\n    damage: 0\n", "damage, range and projectile_speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := strings.Replace(minimalCatalog, tt.from, tt.to, 1)
			if broken == minimalCatalog {
				t.Fatalf("replacement %q did not apply", tt.from)
			}
			_, err := ParseCatalog([]byte(broken))
			if err == nil {
				t.Fatal("got nil error, want validation failure")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("got error %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParseCatalogRequiresWaves(t *testing.T) {
	broken := strings.Replace(minimalCatalog, "waves:\n  - spawn_interval: 500ms\n    monsters:\n      - {monster: grunt, count: 3}\n", "waves: []\n", 1)
	if _, err := ParseCatalog([]byte(broken)); err == nil || !strings.Contains(err.Error(), "at least one wave") {
		t.Errorf("got %v, want a missing waves error", err)
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(minimalCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Board.Columns != 10 || c.Player.InitialGold != 100 {
		t.Errorf("got board %+v player %+v", c.Board, c.Player)
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("got nil error for a missing file")
	}
}
