package rc

import "reflect"

// MaxEventTypes is the number of distinct event types an EventBus accepts.
const MaxEventTypes = 64

// EventBus delivers typed events synchronously to subscribed handlers. The
// workload uses it to report progress without knowing who listens.
//
// Like the rest of the package it is meant for a single goroutine.
type EventBus struct {
	eventTypeMap map[reflect.Type]uint8
	handlers     [][]any
}

// Subscribe registers handler for events of type T. Handlers run in
// subscription order.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.getEventTypeID(reflect.TypeFor[T]())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish calls every handler subscribed to T with event. Publishing a type
// nobody subscribed to is a no-op.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if len(bus.handlers) >= MaxEventTypes {
		panic("rc: too many event types")
	}
	id := uint8(len(bus.handlers))
	bus.eventTypeMap[t] = id
	bus.handlers = append(bus.handlers, make([]any, 0, 4))
	return id
}
