package event

import "testing"

type countingListener struct {
	calls int
}

func (l *countingListener) OnEvent(Event) { l.calls++ }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(Victory, l)

	d.Dispatch(Event{Type: Victory})
	d.Dispatch(Event{Type: Defeat})

	if l.calls != 1 {
		t.Errorf("got %d calls, want 1", l.calls)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(TowerPlaced, l)
	d.Unsubscribe(TowerPlaced, l)

	d.Dispatch(Event{Type: TowerPlaced})
	if l.calls != 0 {
		t.Errorf("got %d calls after unsubscribe, want 0", l.calls)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got Event
	d.Subscribe(MonsterKilled, ListenerFunc(func(e Event) { got = e }))

	d.Dispatch(Event{Type: MonsterKilled, Data: MonsterData{ID: 7, Reward: 20}})

	data, ok := got.Data.(MonsterData)
	if !ok {
		t.Fatalf("got data %T, want MonsterData", got.Data)
	}
	if data.ID != 7 || data.Reward != 20 {
		t.Errorf("got %+v, want id 7 reward 20", data)
	}
}

func TestUnsubscribeKeepsFuncListeners(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(Defeat, ListenerFunc(func(Event) { calls++ }))
	d.Unsubscribe(Defeat, ListenerFunc(func(Event) {}))

	d.Dispatch(Event{Type: Defeat})
	if calls != 1 {
		t.Errorf("got %d calls, want 1", calls)
	}
}
