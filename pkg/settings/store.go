// Package settings keeps the single authoritative copy of the user's settings and keeps
// every subscribed UI surface coherent with it.
//
// Load flows Gateway -> Store -> Listeners. An edit flows Listener -> Store.Update ->
// Gateway.SaveUserSettings -> Store notifies all listeners, the originating one included.
// Init and Update calls are serialized, so notification cycles never interleave and two
// overlapping updates land in call order.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-pkgz/lgr"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

//go:generate moq -out mocks/gateway.go -pkg mocks -skip-ensure -fmt goimports . Gateway

// Gateway is the remote persistence of settings and their rule schema
type Gateway interface {
	FetchConfig(ctx context.Context) (domain.Schema, error)
	FetchUserSettings(ctx context.Context) (domain.Settings, error)
	SaveUserSettings(ctx context.Context, settings domain.Settings) error
}

// errors returned by Update
var (
	ErrNotReady = errors.New("settings store is not initialized")
	ErrNested   = errors.New("settings store can't be changed from a listener, update after OnSettings returns")
)

// PersistenceError reports a failed save after the in-memory settings were already
// changed. The store does not roll back, Changes lists what stays applied locally.
type PersistenceError struct {
	Changes domain.Changes
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save settings %v: %v", e.Changes.Keys(), e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store owns the current settings, the rule schema and the listener registry
type Store struct {
	gateway  Gateway
	log      lgr.L
	retry    func(ctx context.Context, op func() error) error
	fallback domain.Schema

	updateMu sync.Mutex // serializes Init and Update, held across save and notification
	notifyMu sync.Mutex // one notification cycle at a time, late-join deliveries included

	dispatcher atomic.Uint64 // goroutine running the current notification cycle, 0 if none

	mu        sync.RWMutex
	current   domain.Settings
	schema    domain.Schema
	ready     bool
	listeners []registration
	nextID    ListenerID
}

// Config for Store
type Config struct {
	Gateway        Gateway
	Logger         lgr.L                                            // defaults to lgr.Default()
	RetryFunc      func(ctx context.Context, op func() error) error // save retry policy, defaults to a single attempt
	FallbackSchema domain.Schema                                    // used when the config can't be fetched, defaults to domain.DefaultSchema()
}

// New makes a store. It holds empty settings until Init is called.
func New(cfg Config) *Store {
	s := &Store{
		gateway:  cfg.Gateway,
		log:      cfg.Logger,
		retry:    cfg.RetryFunc,
		fallback: cfg.FallbackSchema,
		current:  domain.Settings{},
	}
	if s.log == nil {
		s.log = lgr.Default()
	}
	if s.retry == nil {
		s.retry = func(_ context.Context, op func() error) error { return op() }
	}
	if s.fallback == nil {
		s.fallback = domain.DefaultSchema()
	}
	return s
}

// Init loads the rule schema, then the user's settings, and notifies every listener with an
// init event as its last step. It never fails hard: if the config can't be loaded the built-in
// schema is used, if the user settings can't be loaded the schema defaults are used, and
// in both cases Init returns false.
func (s *Store) Init(ctx context.Context) bool {
	if s.nested() {
		s.log.Logf("[ERROR] settings init called from a listener, ignored")
		return false
	}
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	ok := true
	schema, err := s.gateway.FetchConfig(ctx)
	if err != nil {
		s.log.Logf("[WARN] can't load settings config, using built-in rules: %v", err)
		schema, ok = s.fallback, false
	}

	current := schema.Defaults()
	if ok {
		user, err := s.gateway.FetchUserSettings(ctx)
		if err != nil {
			s.log.Logf("[WARN] can't load user settings, using defaults: %v", err)
			ok = false
		} else {
			current.Apply(domain.Changes(schema.Normalize(user)))
		}
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.schema = schema
	s.current = current
	s.ready = true
	regs := s.registrations()
	snapshot := s.current.Clone()
	s.mu.Unlock()

	s.log.Logf("[INFO] settings initialized with %d rules and %d values, fallback: %v", len(schema), len(snapshot), !ok)
	s.dispatch(regs, Event{Type: EventInit, Settings: snapshot})
	return ok
}

// GetSettings returns a copy of the current settings
func (s *Store) GetSettings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Schema returns the rule schema loaded by Init
func (s *Store) Schema() domain.Schema {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema
}

// IsReady reports whether Init has completed
func (s *Store) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Update applies the fields of partial that differ from the current settings. Nothing
// changed means no save and no notification. Otherwise the delta is merged in memory first,
// then the whole object is saved. A failed save returns PersistenceError and keeps the
// merged values, a successful one notifies every listener with an update event.
// Called from a listener's OnSettings it returns ErrNested and changes nothing.
func (s *Store) Update(ctx context.Context, partial domain.Settings) (domain.Changes, error) {
	if s.nested() {
		s.log.Logf("[ERROR] settings update %v called from a listener, rejected", domain.Changes(partial).Keys())
		return nil, ErrNested
	}
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return nil, ErrNotReady
	}
	changes := s.current.Diff(partial)
	if len(changes) == 0 {
		s.mu.Unlock()
		s.log.Logf("[DEBUG] settings update without changes, skipped")
		return changes, nil
	}
	s.current.Apply(changes)
	toSave := s.current.Clone()
	s.mu.Unlock()

	s.log.Logf("[DEBUG] settings changed: %v", changes)

	if err := s.retry(ctx, func() error { return s.gateway.SaveUserSettings(ctx, toSave) }); err != nil {
		s.log.Logf("[WARN] can't save settings %v: %v", changes.Keys(), err)
		return changes, &PersistenceError{Changes: changes, Err: err}
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.mu.RLock()
	regs := s.registrations()
	snapshot := s.current.Clone()
	s.mu.RUnlock()

	s.dispatch(regs, Event{Type: EventUpdate, Settings: snapshot, Changes: changes})
	return changes, nil
}

// AddListener registers l after the existing listeners. If the store is already initialized
// l is called once right away with an init event carrying the current settings.
// Called from a listener's OnSettings it registers nothing and returns 0.
func (s *Store) AddListener(l Listener) ListenerID {
	if s.nested() {
		s.log.Logf("[ERROR] settings listener added from a listener, rejected")
		return 0
	}
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.nextID++
	reg := registration{id: s.nextID, listener: l}
	s.listeners = append(s.listeners, reg)
	ready := s.ready
	snapshot := s.current.Clone()
	s.mu.Unlock()

	if ready {
		s.dispatch([]registration{reg}, Event{Type: EventInit, Settings: snapshot})
	}
	return reg.id
}

// RemoveListener unregisters the listener with the given id, reports whether it was found
func (s *Store) RemoveListener(id ListenerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, reg := range s.listeners {
		if reg.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// registrations copies the listener list, must be called with mu held
func (s *Store) registrations() []registration {
	res := make([]registration, len(s.listeners))
	copy(res, s.listeners)
	return res
}
