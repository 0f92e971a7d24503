// internal/debug/hub.go
package debug

import (
	"sync"

	"corridor-defense/internal/app"
	"corridor-defense/pkg/gridpath"
)

const subscriberBuffer = 64

// SnapshotHub хранит последний снимок и раздаёт новые подписчикам.
// Publish вызывается из игрового цикла, чтение идёт из HTTP-горутин.
type SnapshotHub struct {
	mu          sync.RWMutex
	latest      app.Snapshot
	hasLatest   bool
	path        []gridpath.PathPoint
	subscribers map[chan app.Snapshot]struct{}
}

func NewSnapshotHub() *SnapshotHub {
	return &SnapshotHub{
		subscribers: make(map[chan app.Snapshot]struct{}),
	}
}

// Publish запоминает снимок и рассылает его. Подписчик с полным буфером
// отключается: его канал закрывается.
func (h *SnapshotHub) Publish(snapshot app.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = snapshot
	h.hasLatest = true
	for ch := range h.subscribers {
		select {
		case ch <- snapshot:
		default:
			delete(h.subscribers, ch)
			close(ch)
		}
	}
}

// SetPath сохраняет коридор текущей сессии.
func (h *SnapshotHub) SetPath(points []gridpath.PathPoint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.path = points
}

// Attach подключает хаб к сессии: путь и поток снимков.
func (h *SnapshotHub) Attach(game *app.Game) {
	h.SetPath(game.PathPoints())
	game.SetPublisher(h)
}

func (h *SnapshotHub) Latest() (app.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.hasLatest
}

func (h *SnapshotHub) Path() []gridpath.PathPoint {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.path
}

// Subscribe возвращает канал снимков и функцию отписки.
func (h *SnapshotHub) Subscribe() (<-chan app.Snapshot, func()) {
	ch := make(chan app.Snapshot, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}
	return ch, unsubscribe
}

// SubscriberCount возвращает количество активных подписчиков.
func (h *SnapshotHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
