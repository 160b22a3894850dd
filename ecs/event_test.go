package ecs

import "testing"

type pingEvent struct{ n int }

func (pingEvent) Type() EventType { return "ping" }

func TestEmitReachesSubscribersInOrder(t *testing.T) {
	em := NewEventManager()
	var got []int
	em.Subscribe("ping", func(e Event) { got = append(got, e.(pingEvent).n) })
	em.Subscribe("ping", func(e Event) { got = append(got, e.(pingEvent).n*10) })
	em.Subscribe("pong", func(e Event) { t.Fatal("pong handler must not run") })

	em.Emit(pingEvent{n: 2})

	if len(got) != 2 || got[0] != 2 || got[1] != 20 {
		t.Fatalf("unexpected dispatch %v", got)
	}
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	em := NewEventManager()
	calls := 0
	first := em.Subscribe("ping", func(Event) { calls += 1 })
	em.Subscribe("ping", func(Event) { calls += 100 })

	em.Unsubscribe("ping", first)
	em.Emit(pingEvent{})

	if calls != 100 {
		t.Fatalf("expected only second handler to run, calls=%d", calls)
	}
}

func TestNilManagerDropsEvents(t *testing.T) {
	var em *EventManager
	em.Emit(pingEvent{})
}

func TestAllocatorIsSequential(t *testing.T) {
	var a IDAllocator
	if a.Next() != 1 || a.Next() != 2 {
		t.Fatal("allocator must count from 1")
	}
}
