package panel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/settings"
)

// SettingsStore is the part of the settings store the edit modal needs
type SettingsStore interface {
	Schema() domain.Schema
	Update(ctx context.Context, partial domain.Settings) (domain.Changes, error)
}

// Modal is the settings edit form. Its draft is reseeded from every store event, edits are
// coerced and validated locally, and Submit sends the draft to the store. When the save fails
// the draft keeps the attempted values.
type Modal struct {
	store SettingsStore
	theme Theme

	mu      sync.Mutex
	draft   domain.Settings
	dirty   map[string]bool
	lastErr error
}

// NewModal makes an edit modal bound to store
func NewModal(store SettingsStore, theme Theme) *Modal {
	return &Modal{store: store, theme: theme, draft: domain.Settings{}, dirty: map[string]bool{}}
}

// OnSettings reseeds the form from the event snapshot
func (m *Modal) OnSettings(ev settings.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = ev.Settings.Clone()
	m.dirty = map[string]bool{}
	m.lastErr = nil
	return nil
}

// Set coerces input for the rule with key and puts it into the draft. Unknown keys and
// invalid values return an error and leave the draft unchanged.
func (m *Modal) Set(key, input string) error {
	rule, ok := m.store.Schema().Rule(key)
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}
	v, err := rule.Coerce(input)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft[key] = v
	m.dirty[key] = true
	return nil
}

// Draft returns a copy of the form values
func (m *Modal) Draft() domain.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft.Clone()
}

// Dirty returns the keys edited since the last store event, sorted
func (m *Modal) Dirty() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	changes := domain.Changes{}
	for k := range m.dirty {
		changes[k] = true
	}
	return changes.Keys()
}

// Submit sends the whole draft to the store, only fields that differ are applied. On success
// the store notifies every listener, this modal included.
func (m *Modal) Submit(ctx context.Context) (domain.Changes, error) {
	m.mu.Lock()
	draft := m.draft.Clone()
	m.mu.Unlock()

	changes, err := m.store.Update(ctx, draft)
	if err != nil {
		m.mu.Lock()
		m.lastErr = err
		m.mu.Unlock()
		return changes, fmt.Errorf("submit settings: %w", err)
	}
	return changes, nil
}

// View renders the form with the current draft, edited fields marked with *
func (m *Modal) View() string {
	groups := m.store.Schema().Groups()
	m.mu.Lock()
	draft, dirty, lastErr := m.draft, m.dirty, m.lastErr
	var sb strings.Builder
	for _, group := range groups {
		sb.WriteString(m.theme.Group.Render(group.Title) + "\n")
		for _, rule := range group.Rules {
			mark := " "
			if dirty[rule.Key] {
				mark = "*"
			}
			fmt.Fprintf(&sb, " %s %s %s%s\n", mark, m.theme.Label.Render(ruleLabel(rule)+" ["+rule.Key+"]:"),
				m.theme.Value.Render(rule.Format(draft[rule.Key])), m.theme.Muted.Render(choices(rule)))
		}
	}
	m.mu.Unlock()

	body := strings.TrimRight(sb.String(), "\n")
	if lastErr != nil {
		msg := "Ayarlar kaydedilemedi, tekrar deneyin: " + lastErr.Error()
		var perr *settings.PersistenceError
		if !errors.As(lastErr, &perr) {
			msg = "Ayarlar kaydedilemedi: " + lastErr.Error()
		}
		body += "\n\n" + m.theme.Error.Render(msg)
	}
	return m.theme.box("Ayarları Düzenle", body)
}

// choices describes the allowed input of a rule
func choices(r domain.RuleDefinition) string {
	switch r.Type {
	case domain.RuleBoolean:
		return " (true|false)"
	case domain.RuleRange:
		if r.Bounds != nil && r.Bounds.Min != nil && r.Bounds.Max != nil {
			return fmt.Sprintf(" (%d-%d)", *r.Bounds.Min, *r.Bounds.Max)
		}
	case domain.RuleSelect, domain.RuleMultiselect:
		keys := make([]string, 0, len(r.Options))
		for _, opt := range r.Options {
			keys = append(keys, opt.Key)
		}
		if len(keys) > 0 {
			return " (" + strings.Join(keys, "|") + ")"
		}
	}
	return ""
}
