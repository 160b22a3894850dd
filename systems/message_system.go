package systems

import (
	"fmt"

	"ebiten-shooter/ecs"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddAlert adds an alert message to the log
func (ml *MessageLog) AddAlert(message string) {
	ml.AddTyped(message, MessageTypeAlert)
}

// AddTyped adds a message of the given type
func (ml *MessageLog) AddTyped(message string, t MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: t})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// Subscribe records kills, deaths and respawns
func (ml *MessageLog) Subscribe(em *ecs.EventManager) {
	em.Subscribe(EventHostileKilled, func(event ecs.Event) {
		e := event.(HostileKilledEvent)
		ml.AddTyped(fmt.Sprintf("[%6.0f] Enemy #%d destroyed at %.0f,%.0f", e.Elapsed, e.HostileID, e.X, e.Y), MessageTypeCombat)
	})
	em.Subscribe(EventPlayerKilled, func(event ecs.Event) {
		e := event.(PlayerKilledEvent)
		ml.AddAlert(fmt.Sprintf("[%6.0f] Fighter #%d was hit by enemy #%d", e.Elapsed, e.PlayerID, e.HostileID))
	})
	em.Subscribe(EventPlayerSpawned, func(event ecs.Event) {
		e := event.(PlayerSpawnedEvent)
		ml.AddAlert(fmt.Sprintf("[%6.0f] Fighter #%d launched", e.Elapsed, e.PlayerID))
	})
	em.Subscribe(EventHostileEscaped, func(event ecs.Event) {
		e := event.(HostileEscapedEvent)
		ml.Add(fmt.Sprintf("[%6.0f] Enemy #%d slipped past", e.Elapsed, e.HostileID))
	})
}
