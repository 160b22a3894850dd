package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies a registered handler so it can be removed later
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      Subscription
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes a handler for a specific event type
func (em *EventManager) Unsubscribe(eventType EventType, id Subscription) {
	handlers, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	newHandlers := make([]subscriber, 0, len(handlers))
	for _, h := range handlers {
		if h.id != id {
			newHandlers = append(newHandlers, h)
		}
	}

	if len(newHandlers) == 0 {
		delete(em.subscribers, eventType)
	} else {
		em.subscribers[eventType] = newHandlers
	}
}

// Emit dispatches an event to all subscribed handlers.
// A nil manager drops the event.
func (em *EventManager) Emit(event Event) {
	if em == nil {
		return
	}
	handlers, exists := em.subscribers[event.Type()]
	if !exists {
		return
	}

	for _, s := range handlers {
		s.handler(event)
	}
}
