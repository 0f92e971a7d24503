// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"corridor-defense/pkg/gridpath"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// BoardDefinition describes the grid the session is played on.
type BoardDefinition struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	CellSize float64 `yaml:"cell_size"`
}

// PlayerDefinition holds the starting resources of the player.
type PlayerDefinition struct {
	InitialHealth int `yaml:"initial_health"`
	InitialGold   int `yaml:"initial_gold"`
}

// Catalog is the complete static content of a session.
// It is loaded once, validated and never mutated afterwards.
type Catalog struct {
	Board    BoardDefinition     `yaml:"board"`
	Player   PlayerDefinition    `yaml:"player"`
	Monsters []MonsterDefinition `yaml:"monsters"`
	Towers   []TowerDefinition   `yaml:"towers"`
	Waves    []WaveDefinition    `yaml:"waves"`
	Patterns []gridpath.Pattern  `yaml:"patterns"`

	monsterIndex map[string]int
	towerIndex   map[TowerKind]int
}

// Default returns the catalog embedded into the binary.
func Default() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// MustDefault is Default for callers that treat a broken embedded catalog as a build error.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalog reads a YAML catalog file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Validate checks every record of the catalog and builds the lookup indexes.
func (c *Catalog) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Board.Columns <= 0 || c.Board.Rows <= 0 {
		add("board: columns and rows must be positive, got %dx%d", c.Board.Columns, c.Board.Rows)
	}
	if c.Board.CellSize <= 0 {
		add("board: cell_size must be positive, got %v", c.Board.CellSize)
	}
	if c.Player.InitialHealth <= 0 {
		add("player: initial_health must be positive, got %d", c.Player.InitialHealth)
	}
	if c.Player.InitialGold < 0 {
		add("player: initial_gold must not be negative, got %d", c.Player.InitialGold)
	}

	c.monsterIndex = make(map[string]int, len(c.Monsters))
	for i, m := range c.Monsters {
		if m.ID == "" {
			add("monster %d: empty id", i)
		} else if _, dup := c.monsterIndex[m.ID]; dup {
			add("monster %q: duplicate id", m.ID)
		}
		c.monsterIndex[m.ID] = i
		if !m.Kind.valid() {
			add("monster %q: unknown kind %q", m.ID, m.Kind)
		}
		if m.HP <= 0 {
			add("monster %q: hp must be positive", m.ID)
		}
		if m.Speed <= 0 {
			add("monster %q: speed must be positive", m.ID)
		}
		if m.ContactDamage < 0 || m.Reward < 0 {
			add("monster %q: contact_damage and reward must not be negative", m.ID)
		}
		if m.Width <= 0 || m.Height <= 0 {
			add("monster %q: width and height must be positive", m.ID)
		}
	}

	c.towerIndex = make(map[TowerKind]int, len(c.Towers))
	for i, t := range c.Towers {
		if !t.Kind.valid() {
			add("tower %d: unknown kind %q", i, t.Kind)
		} else if _, dup := c.towerIndex[t.Kind]; dup {
			add("tower %q: duplicate kind", t.Kind)
		}
		c.towerIndex[t.Kind] = i
		if t.Cost < 0 {
			add("tower %q: cost must not be negative", t.Kind)
		}
		if t.Damage <= 0 || t.Range <= 0 || t.ProjectileSpeed <= 0 {
			add("tower %q: damage, range and projectile_speed must be positive", t.Kind)
		}
		if t.AttackInterval <= 0 {
			add("tower %q: attack_interval must be positive", t.Kind)
		}
		if e := t.Effect; e != nil {
			if !e.Type.valid() {
				add("tower %q: unknown effect type %q", t.Kind, e.Type)
			}
			if e.Value <= 0 || e.Value > 1 {
				add("tower %q: effect value must be in (0, 1], got %v", t.Kind, e.Value)
			}
			if e.Duration <= 0 {
				add("tower %q: effect duration must be positive", t.Kind)
			}
		}
	}

	if len(c.Waves) == 0 {
		add("waves: at least one wave is required")
	}
	for i, w := range c.Waves {
		if len(w.Monsters) == 0 {
			add("wave %d: no monsters", i)
		}
		if w.SpawnInterval <= 0 {
			add("wave %d: spawn_interval must be positive", i)
		}
		for _, e := range w.Monsters {
			if _, ok := c.monsterIndex[e.MonsterID]; !ok {
				add("wave %d: unknown monster %q", i, e.MonsterID)
			}
			if e.Count < 1 {
				add("wave %d: monster %q count must be at least 1", i, e.MonsterID)
			}
		}
	}

	if len(c.Patterns) == 0 {
		add("patterns: at least one path pattern is required")
	}
	for i, p := range c.Patterns {
		if err := p.Validate(c.Board.Columns, c.Board.Rows); err != nil {
			add("pattern %d: %w", i, err)
		}
	}

	return errors.Join(errs...)
}

// Monster looks up a monster definition by id.
func (c *Catalog) Monster(id string) (MonsterDefinition, bool) {
	i, ok := c.monsterIndex[id]
	if !ok {
		return MonsterDefinition{}, false
	}
	return c.Monsters[i], true
}

// Tower looks up a tower archetype by kind.
func (c *Catalog) Tower(kind TowerKind) (TowerDefinition, bool) {
	i, ok := c.towerIndex[kind]
	if !ok {
		return TowerDefinition{}, false
	}
	return c.Towers[i], true
}

// Wave returns the wave definition for a zero-based index.
// An index past the catalog means there are no more waves.
func (c *Catalog) Wave(index int) (WaveDefinition, bool) {
	if index < 0 || index >= len(c.Waves) {
		return WaveDefinition{}, false
	}
	return c.Waves[index], true
}
