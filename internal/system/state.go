// internal/system/state.go
package system

import (
	"corridor-defense/internal/component"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/event"
)

// StateSystem владеет статусом сессии. Выйти из playing можно один раз,
// поэтому Victory и Defeat отправляются не более одного раза.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.GameStatus {
	return s.ecs.Status
}

func (s *StateSystem) IsPlaying() bool {
	return s.ecs.Status == component.StatusPlaying
}

// Win переводит сессию в won. Возвращает false, если сессия уже закончилась.
func (s *StateSystem) Win() bool {
	return s.finish(component.StatusWon, event.Victory)
}

// Lose переводит сессию в lost.
func (s *StateSystem) Lose() bool {
	return s.finish(component.StatusLost, event.Defeat)
}

func (s *StateSystem) finish(status component.GameStatus, eventType event.EventType) bool {
	if !s.IsPlaying() {
		return false
	}
	s.ecs.Status = status
	s.eventDispatcher.Dispatch(event.Event{Type: eventType, Data: s.ecs.Wave.Index})
	return true
}
