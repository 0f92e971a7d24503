// internal/system/spawn.go
package system

import (
	"time"

	"corridor-defense/internal/component"
	"corridor-defense/internal/config"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/event"
	"corridor-defense/internal/types"
	"corridor-defense/internal/utils"
	"corridor-defense/pkg/gridpath"
	"corridor-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SpawnSystem выпускает монстров текущей волны по одному.
type SpawnSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	path            *gridpath.Path
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(ecs *entity.ECS, catalog *defs.Catalog, path *gridpath.Path, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		catalog:         catalog,
		path:            path,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// BuildQueue раскрывает пары (шаблон, количество) волны и перемешивает их.
// Для индекса за пределами каталога очередь пустая.
func (s *SpawnSystem) BuildQueue(index int) ([]defs.MonsterDefinition, time.Duration) {
	waveDef, ok := s.catalog.Wave(index)
	if !ok {
		return nil, 0
	}

	queue := make([]defs.MonsterDefinition, 0, waveDef.Size())
	for _, entry := range waveDef.Monsters {
		def, ok := s.catalog.Monster(entry.MonsterID)
		if !ok {
			// каталог проверен при загрузке, сюда попасть нельзя
			logger.Log.WithField("monster", entry.MonsterID).Error("unknown monster in wave")
			continue
		}
		for i := 0; i < entry.Count; i++ {
			queue = append(queue, def)
		}
	}
	s.rng.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
	return queue, waveDef.SpawnInterval
}

// StartWave делает волну index текущей и заполняет очередь спавна.
func (s *SpawnSystem) StartWave(index int) {
	wave := s.ecs.Wave
	wave.Index = index
	wave.Queue, wave.SpawnInterval = s.BuildQueue(index)
	if len(wave.Queue) == 0 {
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"wave":     index + 1,
		"monsters": len(wave.Queue),
		"interval": wave.SpawnInterval,
	}).Info("Wave started")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Index: index, Size: len(wave.Queue)},
	})
}

// Update выпускает не больше одного монстра за тик. Возвращает id нового монстра или 0.
func (s *SpawnSystem) Update(now time.Duration) types.EntityID {
	wave := s.ecs.Wave
	if len(wave.Queue) == 0 {
		return 0
	}
	if wave.HasSpawned && now-wave.LastSpawnTime < wave.SpawnInterval {
		return 0
	}

	def := wave.Queue[0]
	wave.Queue = wave.Queue[1:]
	wave.LastSpawnTime = now
	wave.HasSpawned = true

	return s.spawnMonster(def)
}

func (s *SpawnSystem) spawnMonster(def defs.MonsterDefinition) types.EntityID {
	id := s.ecs.NewEntity()
	start := s.path.Start()

	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{CurrentIndex: 0}
	s.ecs.Healths[id] = &component.Health{Value: def.HP, Max: def.HP}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:         def.ID,
		Kind:          def.Kind,
		ContactDamage: def.ContactDamage,
		Width:         def.Width,
		Height:        def.Height,
		Reward:        def.Reward,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.MonsterColors[string(def.Kind)],
		Radius:    float32(min(def.Width, def.Height) * config.MonsterRadiusFactor),
		HasStroke: def.Kind == defs.MonsterElite,
	}
	s.ecs.RegisterMonster(id)

	logger.Log.WithFields(logrus.Fields{"id": id, "monster": def.ID}).Debug("Monster spawned")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MonsterSpawned,
		Data: event.MonsterData{ID: id, DefID: def.ID},
	})
	return id
}
