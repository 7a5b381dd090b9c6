package session

import (
	"github.com/rs/xid"

	"github.com/wippyai/fpgaio/resource"
)

// EventType identifies a session lifecycle or access event.
type EventType uint8

const (
	EventInitialized EventType = iota
	EventRead
	EventWrite
	EventFinalized
)

func (t EventType) String() string {
	switch t {
	case EventInitialized:
		return "initialized"
	case EventRead:
		return "read"
	case EventWrite:
		return "write"
	case EventFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Event describes one session lifecycle step or register access.
// Register and Data are zero for lifecycle events.
type Event struct {
	Register resource.Descriptor
	Data     []byte
	Session  xid.ID
	Type     EventType
}

// Observer receives session events synchronously, on the accessing goroutine.
type Observer interface {
	OnSessionEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnSessionEvent(e Event) { f(e) }

type subscription struct {
	o  Observer
	id uint64
}

// Subscribe adds an observer and returns a function that removes it.
// Removal never mutates the slice an in-flight notify is ranging over.
func (s *Session) Subscribe(o Observer) (unsubscribe func()) {
	s.nextSub++
	id := s.nextSub
	s.observers = append(s.observers, subscription{id: id, o: o})
	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				next := make([]subscription, 0, len(s.observers)-1)
				next = append(next, s.observers[:i]...)
				s.observers = append(next, s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) notify(typ EventType, d resource.Descriptor, data []byte) {
	if len(s.observers) == 0 {
		return
	}
	e := Event{
		Type:     typ,
		Session:  s.id,
		Register: d,
		Data:     data,
	}
	for _, sub := range s.observers {
		sub.o.OnSessionEvent(e)
	}
}
