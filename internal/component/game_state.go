// internal/component/game_state.go
package component

import (
	"time"

	"corridor-defense/internal/defs"
)

// GameStatus — состояние сессии. Переходы только из playing.
type GameStatus string

const (
	StatusPlaying GameStatus = "playing"
	StatusWon     GameStatus = "won"
	StatusLost    GameStatus = "lost"
)

// Wave — текущая волна и очередь монстров на спавн.
type Wave struct {
	Index         int
	Queue         []defs.MonsterDefinition
	SpawnInterval time.Duration
	LastSpawnTime time.Duration
	HasSpawned    bool // первый спавн сессии происходит сразу
}
