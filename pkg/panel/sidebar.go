package panel

import (
	"strings"
	"sync"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/settings"
)

//go:generate moq -out mocks/settings_store.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore RemoteBuilder

// SchemaSource provides the rule schema used to label and format values
type SchemaSource interface {
	Schema() domain.Schema
}

// Sidebar is the read-only summary of the current settings, grouped by category
type Sidebar struct {
	schema SchemaSource
	theme  Theme

	mu       sync.Mutex
	view     string
	degraded bool
	renders  int
}

// NewSidebar makes a sidebar rendering with the given theme
func NewSidebar(schema SchemaSource, theme Theme) *Sidebar {
	return &Sidebar{schema: schema, theme: theme, view: theme.Muted.Render("Ayarlar yükleniyor...")}
}

// SetDegraded marks the sidebar as showing default values because the backend was unavailable
func (s *Sidebar) SetDegraded(degraded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.degraded = degraded
}

// OnSettings re-renders the summary from the event snapshot
func (s *Sidebar) OnSettings(ev settings.Event) error {
	view := s.render(ev.Settings)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.degraded {
		view += "\n" + s.theme.Muted.Render("Varsayılan ayarlar kullanılıyor")
	}
	s.view = view
	s.renders++
	return nil
}

// View returns the last rendered summary
func (s *Sidebar) View() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Renders returns how many times the sidebar was rendered
func (s *Sidebar) Renders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}

func (s *Sidebar) render(values domain.Settings) string {
	var sb strings.Builder
	for i, group := range s.schema.Schema().Groups() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.theme.Group.Render(group.Title))
		sb.WriteString("\n")
		for _, rule := range group.Rules {
			sb.WriteString("  ")
			sb.WriteString(s.theme.Label.Render(ruleLabel(rule) + ":"))
			sb.WriteString(" ")
			sb.WriteString(s.theme.Value.Render(rule.Format(values[rule.Key])))
			sb.WriteString("\n")
		}
	}
	return s.theme.box("Mevcut Ayarlar", strings.TrimRight(sb.String(), "\n"))
}

func ruleLabel(r domain.RuleDefinition) string {
	if r.Label != "" {
		return r.Label
	}
	return r.Key
}
