package panel

import (
	"context"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/prompt"
	"github.com/newsdesk/newsdesk/pkg/settings"
)

// RemoteBuilder builds the prompt on the backend
type RemoteBuilder interface {
	BuildCompletePrompt(ctx context.Context, s domain.Settings, newsText string) (string, error)
}

// Preview keeps the prompt built from the latest settings snapshot and the draft article text
type Preview struct {
	theme  Theme
	remote RemoteBuilder
	log    lgr.L

	mu       sync.Mutex
	settings domain.Settings
	text     string
	prompt   string
}

// NewPreview makes a preview panel, remote is optional
func NewPreview(theme Theme, remote RemoteBuilder, log lgr.L) *Preview {
	if log == nil {
		log = lgr.Default()
	}
	return &Preview{theme: theme, remote: remote, log: log, settings: domain.Settings{}}
}

// OnSettings rebuilds the prompt with the new snapshot
func (p *Preview) OnSettings(ev settings.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settings = ev.Settings.Clone()
	p.prompt = prompt.Build(p.text, p.settings)
	return nil
}

// SetText replaces the article text and rebuilds the prompt
func (p *Preview) SetText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = text
	p.prompt = prompt.Build(p.text, p.settings)
}

// Prompt returns the locally built prompt
func (p *Preview) Prompt() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.prompt
}

// RemotePrompt asks the backend for the prompt. Without a remote builder, or when the call
// fails, the local prompt is returned and remote is false.
func (p *Preview) RemotePrompt(ctx context.Context) (res string, remote bool) {
	p.mu.Lock()
	snapshot, text, local := p.settings.Clone(), p.text, p.prompt
	p.mu.Unlock()

	if p.remote == nil {
		return local, false
	}
	res, err := p.remote.BuildCompletePrompt(ctx, snapshot, text)
	if err != nil {
		p.log.Logf("[WARN] can't build prompt on the server, using local one: %v", err)
		return local, false
	}
	return res, true
}

// View renders the prompt preview
func (p *Preview) View() string {
	return p.theme.box("Prompt Önizleme", p.Prompt())
}
