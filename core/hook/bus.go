package hook

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/quillmail/quillmail/core/logger"
)

// Observer receives a one-way notification about an emitted event.
type Observer func(Event)

// Filter transforms a value flowing through an extension point.
// It must return a value of the same dynamic type it received.
type Filter func(any) any

// Bus is a synchronous in-process dispatcher for the library's extension
// points. Observers are notified after the fact; filters may transform
// content or messages in place of the emitting operation.
//
// A nil *Bus is valid and behaves as a no-op, so components can accept an
// optional bus without guarding every call site.
type Bus struct {
	mu        sync.RWMutex
	observers map[string][]Observer
	filters   map[string][]Filter
	log       *slog.Logger
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger sets the logger used to report recovered observer panics.
func WithLogger(log *slog.Logger) BusOption {
	return func(b *Bus) { b.log = log }
}

// NewBus creates an empty dispatcher.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		observers: make(map[string][]Observer),
		filters:   make(map[string][]Filter),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// On registers an observer for the named event.
func (b *Bus) On(name string, fn Observer) {
	if b == nil || fn == nil {
		return
	}
	b.mu.Lock()
	b.observers[name] = append(b.observers[name], fn)
	b.mu.Unlock()
}

// OnFilter registers a filter for the named extension point.
// Filters run in registration order, each receiving the previous result.
func (b *Bus) OnFilter(name string, fn Filter) {
	if b == nil || fn == nil {
		return
	}
	b.mu.Lock()
	b.filters[name] = append(b.filters[name], fn)
	b.mu.Unlock()
}

// Emit notifies every observer registered for the named event, synchronously,
// in registration order. A panicking observer is recovered and logged; it
// never aborts the emitting operation or the remaining observers.
func (b *Bus) Emit(name string, payload any) {
	if b == nil {
		return
	}
	b.mu.RLock()
	observers := b.observers[name]
	b.mu.RUnlock()

	evt := NewEvent(name, payload)
	for _, fn := range observers {
		b.notify(evt, fn)
	}
}

// Apply runs the value through every filter registered for the named
// extension point and returns the result. A panicking filter is recovered
// and logged, and its input is passed through unchanged.
func (b *Bus) Apply(name string, value any) any {
	if b == nil {
		return value
	}
	b.mu.RLock()
	filters := b.filters[name]
	b.mu.RUnlock()

	for _, fn := range filters {
		value = b.filter(name, value, fn)
	}
	return value
}

func (b *Bus) notify(evt Event, fn Observer) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("hook observer panicked",
				logger.Component("hook"),
				logger.Event(evt.Name),
				logger.Error(fmt.Errorf("%v", r)),
			)
		}
	}()
	fn(evt)
}

func (b *Bus) filter(name string, value any, fn Filter) (out any) {
	out = value
	defer func() {
		if r := recover(); r != nil {
			out = value
			b.log.Error("hook filter panicked",
				logger.Component("hook"),
				logger.Event(name),
				logger.Error(fmt.Errorf("%v", r)),
			)
		}
	}()
	return fn(value)
}
