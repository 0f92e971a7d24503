// internal/system/wave.go
package system

import (
	"corridor-defense/internal/defs"
	"corridor-defense/internal/entity"
)

// WaveSystem решает, что дальше: поражение, следующая волна или победа.
type WaveSystem struct {
	ecs     *entity.ECS
	catalog *defs.Catalog
	spawn   *SpawnSystem
	state   *StateSystem
}

func NewWaveSystem(ecs *entity.ECS, catalog *defs.Catalog, spawn *SpawnSystem, state *StateSystem) *WaveSystem {
	return &WaveSystem{
		ecs:     ecs,
		catalog: catalog,
		spawn:   spawn,
		state:   state,
	}
}

// Update вызывается последним в тике. Поражение проверяется раньше волн.
func (s *WaveSystem) Update() {
	if !s.state.IsPlaying() {
		return
	}
	if s.ecs.Player.Health <= 0 {
		s.state.Lose()
		return
	}

	wave := s.ecs.Wave
	if len(wave.Queue) > 0 || s.ecs.MonsterCount() > 0 {
		return
	}
	if wave.Index < len(s.catalog.Waves)-1 {
		s.spawn.StartWave(wave.Index + 1)
		return
	}
	s.state.Win()
}
