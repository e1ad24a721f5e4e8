package swipe

// EventKind identifies a lifecycle event of a control.
type EventKind int

const (
	EventOpening EventKind = iota
	EventOpened
	EventClosing
	EventClosed
)

func (k EventKind) String() string {
	switch k {
	case EventOpening:
		return "opening"
	case EventOpened:
		return "opened"
	case EventClosing:
		return "closing"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is delivered to lifecycle subscribers.
type Event struct {
	Kind   EventKind
	Source *Control
}

// Handler receives lifecycle events.
type Handler func(Event)

// Subscription is returned by Subscribe. Unsubscribe is safe to call more
// than once and on the zero value.
type Subscription struct {
	emitter *emitter
	kind    EventKind
	id      uint64
}

// Unsubscribe removes the handler.
func (s Subscription) Unsubscribe() {
	if s.emitter == nil {
		return
	}
	s.emitter.remove(s.kind, s.id)
}

type listener struct {
	id      uint64
	handler Handler
}

type emitter struct {
	nextID    uint64
	listeners map[EventKind][]listener
}

func (e *emitter) add(kind EventKind, h Handler) Subscription {
	if e.listeners == nil {
		e.listeners = make(map[EventKind][]listener)
	}
	e.nextID++
	e.listeners[kind] = append(e.listeners[kind], listener{id: e.nextID, handler: h})
	return Subscription{emitter: e, kind: kind, id: e.nextID}
}

func (e *emitter) remove(kind EventKind, id uint64) {
	list := e.listeners[kind]
	for i, l := range list {
		if l.id == id {
			e.listeners[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

func (e *emitter) emit(ev Event) {
	// Handlers may unsubscribe while we iterate.
	list := append([]listener(nil), e.listeners[ev.Kind]...)
	for _, l := range list {
		l.handler(ev)
	}
}
