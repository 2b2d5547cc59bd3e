// internal/event/manager.go
package event

import (
	"sync"

	"github.com/mvetter/codearea/internal/logger"
)

// Handler is the function signature for event subscribers. The return value
// reports whether the event was consumed; dispatch currently ignores it but
// the signature leaves room for propagation control.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates an empty event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Dispatch sends an event synchronously to every handler registered for its
// type. Handlers run on the caller's goroutine; a key-press handler returns
// only after all subscribers have seen the change.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	registered := m.handlers[eventType]
	handlers := make([]Handler, len(registered))
	copy(handlers, registered)
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	logger.Debugf("event: dispatching type %v to %d handler(s)", eventType, len(handlers))

	e := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		handler(e)
	}
}
