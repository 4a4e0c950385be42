package settings

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

// EventType tells listeners why they are called
type EventType string

// enum of event types
const (
	EventInit   EventType = "init"
	EventUpdate EventType = "update"
)

// Event is delivered to every listener once per notification cycle. Settings is a private
// snapshot of the whole current object and is the ground truth for rendering, Changes only
// lists the fields modified by the update (empty for init events).
type Event struct {
	Type     EventType
	Settings domain.Settings
	Changes  domain.Changes
}

// Listener is a UI-bound component re-rendering its own region on settings changes.
// Store.Update, Store.AddListener and Store.Init called synchronously from OnSettings are
// rejected: Update returns ErrNested, AddListener returns 0, Init returns false. A listener
// may start a goroutine for a follow-up update, as long as it doesn't wait for it.
type Listener interface {
	OnSettings(ev Event) error
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev Event) error

// OnSettings calls f(ev)
func (f ListenerFunc) OnSettings(ev Event) error { return f(ev) }

// ListenerID identifies one registration. Adding the same listener twice yields two ids
// and two invocations per cycle.
type ListenerID uint64

type registration struct {
	id       ListenerID
	listener Listener
}

// dispatch delivers ev to the registrations in order. Each listener gets its own copy of
// the snapshot; errors and panics are logged and never stop delivery to the rest.
func (s *Store) dispatch(regs []registration, ev Event) {
	s.dispatcher.Store(goroutineID())
	defer s.dispatcher.Store(0)
	for _, reg := range regs {
		if err := s.invoke(reg, ev); err != nil {
			s.log.Logf("[WARN] settings listener #%d failed on %s event: %v", reg.id, ev.Type, err)
		}
	}
}

func (s *Store) invoke(reg registration, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	own := Event{Type: ev.Type, Settings: ev.Settings.Clone(), Changes: domain.Changes{}}
	for k, v := range ev.Changes {
		own.Changes[k] = v
	}
	return reg.listener.OnSettings(own)
}

// nested reports whether the caller runs inside a notification cycle, i.e. on the goroutine
// currently delivering events
func (s *Store) nested() bool {
	id := s.dispatcher.Load()
	return id != 0 && id == goroutineID()
}

// goroutineID parses the current goroutine id from the "goroutine 42 [running]:" stack header
func goroutineID() uint64 {
	buf := make([]byte, 64)
	buf = bytes.TrimPrefix(buf[:runtime.Stack(buf, false)], []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i > 0 {
		buf = buf[:i]
	}
	id, err := strconv.ParseUint(string(buf), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
