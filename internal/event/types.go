// internal/event/types.go
package event

import "corridor-defense/internal/types"

const (
	MonsterSpawned EventType = "MonsterSpawned" // Монстр появился в начале пути
	MonsterKilled  EventType = "MonsterKilled"  // Монстр убит, золото начислено
	MonsterArrived EventType = "MonsterArrived" // Монстр дошёл до конца пути
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	WaveStarted    EventType = "WaveStarted"    // Началась новая волна
	Victory        EventType = "Victory"        // Все волны пройдены, один раз за сессию
	Defeat         EventType = "Defeat"         // Здоровье кончилось, один раз за сессию
)

// MonsterData — данные событий о монстрах.
type MonsterData struct {
	ID     types.EntityID
	DefID  string
	Reward int // для MonsterKilled
	Damage int // для MonsterArrived
}

// TowerData — данные TowerPlaced.
type TowerData struct {
	ID   types.EntityID
	Kind string
	Cost int
}

// WaveData — данные WaveStarted.
type WaveData struct {
	Index int
	Size  int
}
