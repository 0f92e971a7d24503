// internal/app/game.go
package app

import (
	"image"
	"time"

	"corridor-defense/internal/component"
	"corridor-defense/internal/config"
	"corridor-defense/internal/defs"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/event"
	"corridor-defense/internal/system"
	"corridor-defense/internal/types"
	"corridor-defense/internal/utils"
	"corridor-defense/pkg/gridpath"
	"corridor-defense/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SnapshotPublisher получает снимок состояния после каждого тика.
type SnapshotPublisher interface {
	Publish(snapshot Snapshot)
}

// Options — параметры новой сессии.
type Options struct {
	Seed     int64             // 0 — сид от текущего времени
	Reserved []image.Rectangle // nil — панели интерфейса по умолчанию
}

// Game holds the main game state and logic.
type Game struct {
	SessionID    uuid.UUID
	Catalog      *defs.Catalog
	Path         *gridpath.Path
	PatternIndex int
	ECS          *entity.ECS
	Rng          *utils.PRNGService

	SpawnSystem        *system.SpawnSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	StateSystem        *system.StateSystem
	WaveSystem         *system.WaveSystem
	EventDispatcher    *event.Dispatcher

	SpeedMultiplier float64

	reserved    []image.Rectangle
	towerCells  map[gridpath.Cell]types.EntityID
	accumulator time.Duration
	publisher   SnapshotPublisher
	log         *logrus.Entry
}

// DefaultReservedAreas — прямоугольники панелей, на которые нельзя ставить башни.
func DefaultReservedAreas() []image.Rectangle {
	return []image.Rectangle{
		image.Rect(config.InfoPanelX, config.InfoPanelY,
			config.InfoPanelX+config.InfoPanelWidth, config.InfoPanelY+config.InfoPanelHeight),
		image.Rect(config.TowerPanelX, config.TowerPanelY,
			config.TowerPanelX+config.TowerPanelWidth, config.TowerPanelY+config.TowerPanelHeight),
	}
}

// NewGame initializes a new game instance: выбирает путь, заполняет очередь
// первой волны и выдаёт игроку стартовые ресурсы.
func NewGame(catalog *defs.Catalog, opts Options) *Game {
	if catalog == nil {
		panic("catalog cannot be nil")
	}

	rng := utils.NewPRNGService(opts.Seed)
	path, patternIndex := gridpath.Generate(catalog.Patterns, rng, catalog.Board.CellSize)

	reserved := opts.Reserved
	if reserved == nil {
		reserved = DefaultReservedAreas()
	}

	ecs := entity.NewECS()
	ecs.Player = component.Player{
		Health: catalog.Player.InitialHealth,
		Gold:   catalog.Player.InitialGold,
	}
	eventDispatcher := event.NewDispatcher()

	sessionID := uuid.New()
	g := &Game{
		SessionID:       sessionID,
		Catalog:         catalog,
		Path:            path,
		PatternIndex:    patternIndex,
		ECS:             ecs,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		SpeedMultiplier: 1,
		reserved:        reserved,
		towerCells:      make(map[gridpath.Cell]types.EntityID),
		log:             logger.Log.WithField("session", sessionID.String()),
	}
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.SpawnSystem = system.NewSpawnSystem(ecs, catalog, path, rng, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.StatusEffectSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, path, g.StatusEffectSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, catalog, g.SpawnSystem, g.StateSystem)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.Victory, listener)
	eventDispatcher.Subscribe(event.Defeat, listener)
	eventDispatcher.Subscribe(event.MonsterArrived, listener)

	g.log.WithFields(logrus.Fields{
		"seed":    rng.Seed(),
		"pattern": patternIndex,
		"points":  path.Len(),
	}).Info("Session created")

	g.SpawnSystem.StartWave(0)
	return g
}

// GameEventListener пишет в лог важные для сессии события.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.Victory:
		g.log.WithField("waves", len(g.Catalog.Waves)).Info("Victory")
	case event.Defeat:
		g.log.WithFields(logrus.Fields{
			"wave":   g.ECS.Wave.Index + 1,
			"health": g.ECS.Player.Health,
		}).Info("Defeat")
	case event.MonsterArrived:
		if data, ok := e.Data.(event.MonsterData); ok {
			g.log.WithFields(logrus.Fields{"monster": data.DefID, "damage": data.Damage}).Debug("Player hit")
		}
	}
}

// OnVictory регистрирует колбэк победы. Он вызывается не более одного раза.
func (g *Game) OnVictory(fn func()) {
	g.EventDispatcher.Subscribe(event.Victory, event.ListenerFunc(func(event.Event) { fn() }))
}

// OnDefeat регистрирует колбэк поражения. Он вызывается не более одного раза.
func (g *Game) OnDefeat(fn func()) {
	g.EventDispatcher.Subscribe(event.Defeat, event.ListenerFunc(func(event.Event) { fn() }))
}

// SetPublisher подключает получателя снимков (отладочный сервер).
func (g *Game) SetPublisher(p SnapshotPublisher) {
	g.publisher = p
	if p != nil {
		p.Publish(g.Snapshot())
	}
}

// Update копит реальное время кадра и прогоняет столько фиксированных тиков,
// сколько набралось, но не больше MaxTicksPerFrame.
func (g *Game) Update(deltaTime float64) int {
	if !g.StateSystem.IsPlaying() {
		return 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.accumulator += time.Duration(deltaTime * g.SpeedMultiplier * float64(time.Second))

	ticks := 0
	for g.accumulator >= config.TickStep && ticks < config.MaxTicksPerFrame {
		g.accumulator -= config.TickStep
		if !g.Tick() {
			g.accumulator = 0
			break
		}
		ticks++
	}
	// Отставание больше лимита не догоняем
	if g.accumulator >= config.TickStep {
		g.accumulator = 0
	}
	return ticks
}

// Tick — один логический шаг: спавн, стрельба, снаряды, движение, оценка волны.
// Возвращает false, если сессия уже закончилась.
func (g *Game) Tick() bool {
	if !g.StateSystem.IsPlaying() {
		return false
	}
	now := g.ECS.GameTime

	g.SpawnSystem.Update(now)
	g.CombatSystem.Update(now)
	g.ProjectileSystem.Update(now)
	g.MovementSystem.Update(now)
	g.WaveSystem.Update()

	g.ECS.GameTime += config.TickStep
	entity.AssertGold(g.ECS.Player.Gold)

	if g.publisher != nil {
		g.publisher.Publish(g.Snapshot())
	}
	return true
}

// ToggleSpeed переключает множитель скорости x1 -> x2 -> x4 -> x1.
func (g *Game) ToggleSpeed() float64 {
	switch g.SpeedMultiplier {
	case 1:
		g.SpeedMultiplier = 2
	case 2:
		g.SpeedMultiplier = 4
	default:
		g.SpeedMultiplier = 1
	}
	return g.SpeedMultiplier
}

func (g *Game) Status() component.GameStatus {
	return g.StateSystem.Current()
}

func (g *Game) GameTime() time.Duration {
	return g.ECS.GameTime
}
