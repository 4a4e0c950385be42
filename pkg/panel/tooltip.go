package panel

import (
	"strings"
	"sync"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/prompt"
	"github.com/newsdesk/newsdesk/pkg/settings"
)

// Tooltips shows, for every prompt section, the current values of the settings driving it
type Tooltips struct {
	schema SchemaSource
	theme  Theme

	mu    sync.Mutex
	texts map[string]string
}

// NewTooltips makes the tooltip panel
func NewTooltips(schema SchemaSource, theme Theme) *Tooltips {
	return &Tooltips{schema: schema, theme: theme, texts: map[string]string{}}
}

// OnSettings recomputes tooltip texts from the snapshot
func (t *Tooltips) OnSettings(ev settings.Event) error {
	schema := t.schema.Schema()
	texts := make(map[string]string, len(prompt.SectionSettings))
	for section, keys := range prompt.SectionSettings {
		lines := make([]string, 0, len(keys))
		for _, key := range keys {
			rule, ok := schema.Rule(key)
			if !ok {
				rule = domain.RuleDefinition{Key: key}
			}
			lines = append(lines, ruleLabel(rule)+": "+rule.Format(ev.Settings[key]))
		}
		texts[section] = strings.Join(lines, "\n")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.texts = texts
	return nil
}

// For returns the tooltip text of a prompt section, empty for sections not driven by settings
func (t *Tooltips) For(section string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.texts[section]
}

// View renders tooltips of all settings-driven sections in prompt order
func (t *Tooltips) View() string {
	var sb strings.Builder
	for _, key := range prompt.SectionOrder {
		tip := t.For(key)
		if tip == "" {
			continue
		}
		sb.WriteString(t.theme.Group.Render(prompt.SectionTitles[key]) + "\n")
		for _, line := range strings.Split(tip, "\n") {
			sb.WriteString("  " + t.theme.Label.Render(line) + "\n")
		}
	}
	return t.theme.box("Bölüm Ayarları", strings.TrimRight(sb.String(), "\n"))
}
