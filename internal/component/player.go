// internal/component/player.go
package component

// Player хранит ресурсы игрока.
type Player struct {
	Health int
	Gold   int
}
