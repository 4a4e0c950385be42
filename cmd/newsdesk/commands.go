package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"

	"github.com/newsdesk/newsdesk/pkg/localstate"
	"github.com/newsdesk/newsdesk/pkg/panel"
	"github.com/newsdesk/newsdesk/pkg/source"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
)

// errNoDraft is returned when a command needs article text and there is none
var errNoDraft = errors.New("no article text, use --text or fetch one first")

type settingsCmd struct {
	Edit bool `short:"e" long:"edit" description:"show the edit form with allowed values"`
}

func (c settingsCmd) run(a *app, out io.Writer) error {
	if c.Edit {
		fmt.Fprintln(out, a.modal.View())
		return nil
	}
	fmt.Fprintln(out, a.sidebar.View())
	if a.degraded {
		if snapshot, at := a.local.Snapshot(); snapshot != nil {
			warnColor.Fprintf(out, "son eşitlenen ayarlar %s tarihinde kaydedildi\n", at.Local().Format("2006-01-02 15:04"))
		}
	}
	return nil
}

type setCmd struct {
	Args struct {
		Pairs []string `positional-arg-name:"key=value" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

// run puts every pair into the edit form, validated locally, and submits the form once
func (c setCmd) run(ctx context.Context, a *app, out io.Writer) error {
	for _, pair := range c.Args.Pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid setting %q, expected key=value", pair)
		}
		if err := a.modal.Set(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}

	changes, err := a.modal.Submit(ctx)
	if err != nil {
		fmt.Fprintln(out, a.modal.View())
		return err
	}
	if len(changes) == 0 {
		warnColor.Fprintln(out, "değişiklik yok")
		return nil
	}
	okColor.Fprintf(out, "kaydedildi: %s\n", strings.Join(changes.Keys(), ", "))
	fmt.Fprintln(out, a.sidebar.View())
	return nil
}

type previewCmd struct {
	Text   string `short:"t" long:"text" description:"article text, replaces the draft"`
	Remote bool   `short:"r" long:"remote" description:"build the prompt on the backend"`
	Copy   bool   `short:"c" long:"copy" description:"copy the prompt to clipboard"`
	Tips   bool   `long:"tips" description:"show which settings drive each prompt section"`
}

func (c previewCmd) run(ctx context.Context, a *app, out io.Writer) error {
	if c.Text != "" {
		text := source.CleanText(c.Text)
		if err := a.local.SetDraft(text); err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		a.preview.SetText(text)
	}

	prompt := a.preview.Prompt()
	if c.Remote {
		var remote bool
		if prompt, remote = a.preview.RemotePrompt(ctx); !remote {
			warnColor.Fprintln(out, "sunucuya ulaşılamadı, yerel prompt gösteriliyor")
		}
		fmt.Fprintln(out, prompt)
	} else {
		fmt.Fprintln(out, a.preview.View())
	}

	if c.Tips {
		fmt.Fprintln(out, a.tooltips.View())
	}
	if c.Copy {
		if err := clipboard.WriteAll(prompt); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		okColor.Fprintln(out, "prompt panoya kopyalandı")
	}
	return nil
}

type processCmd struct {
	Text string `short:"t" long:"text" description:"article text, the draft is used if empty"`
	File string `short:"f" long:"file" description:"read article text from file"`
}

// run submits the article with the current settings and keeps the result in local history
func (c processCmd) run(ctx context.Context, a *app, out io.Writer) error {
	text := c.Text
	if c.File != "" {
		data, err := os.ReadFile(c.File) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return fmt.Errorf("read article: %w", err)
		}
		text = string(data)
	}
	if text == "" {
		text = a.local.Draft()
	}
	if strings.TrimSpace(text) == "" {
		return errNoDraft
	}
	text = source.CleanText(text)
	if err := source.ValidateText(text); err != nil {
		return err
	}

	res, err := a.gateway.ProcessNews(ctx, text, a.store.GetSettings())
	if err != nil {
		return fmt.Errorf("process article: %w", err)
	}

	entry := localstate.HistoryEntry{Input: text, Title: res.Title, Output: res.ProcessedText, Format: res.Format}
	if _, err := a.local.AddHistory(entry); err != nil {
		warnColor.Fprintf(out, "yerel geçmiş kaydedilemedi: %v\n", err)
	}
	fmt.Fprintln(out, panel.RenderResult(a.theme, res))
	return nil
}

type fetchCmd struct {
	Args struct {
		URL string `positional-arg-name:"url" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

// run extracts the main text of the page and stores it as the draft
func (c fetchCmd) run(ctx context.Context, opts Opts, out io.Writer) error {
	local, err := openLocal(opts)
	if err != nil {
		return err
	}
	article, err := source.NewExtractor(opts.Timeout, "").Extract(ctx, c.Args.URL)
	if err != nil {
		return err
	}
	return saveDraft(local, article.Title, article.Text, out)
}

type feedCmd struct {
	Limit int `short:"n" long:"limit" default:"10" description:"max items to list"`
	Load  int `short:"l" long:"load" description:"load item number N into the draft"`
	Args  struct {
		URL string `positional-arg-name:"url" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c feedCmd) run(ctx context.Context, opts Opts, out io.Writer) error {
	local, err := openLocal(opts)
	if err != nil {
		return err
	}
	feed, err := source.NewFeedReader(opts.Timeout, "").Read(ctx, c.Args.URL, c.Limit)
	if err != nil {
		return err
	}

	if c.Load > 0 {
		if c.Load > len(feed.Items) {
			return fmt.Errorf("feed has %d items, can't load item %d", len(feed.Items), c.Load)
		}
		item := feed.Items[c.Load-1]
		return saveDraft(local, item.Title, item.Text, out)
	}

	theme := panel.NewTheme(local.Theme())
	fmt.Fprintln(out, theme.Title.Render(feed.Title))
	for i, item := range feed.Items {
		published := ""
		if !item.Published.IsZero() {
			published = item.Published.Local().Format("2006-01-02 15:04") + " "
		}
		fmt.Fprintf(out, "%2d. %s%s\n", i+1, theme.Muted.Render(published), item.Title)
	}
	return nil
}

// saveDraft stores title and text as the draft article, title as the first paragraph
func saveDraft(local *localstate.Store, title, text string, out io.Writer) error {
	text = source.CleanText(text)
	if title != "" && !strings.HasPrefix(text, title) {
		text = title + "\n\n" + text
	}
	if err := source.ValidateText(text); err != nil {
		return err
	}
	if err := local.SetDraft(text); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	okColor.Fprintf(out, "taslak kaydedildi, %d karakter\n", len([]rune(text)))
	return nil
}

type historyCmd struct {
	Limit int  `short:"n" long:"limit" default:"20" description:"max records"`
	Local bool `long:"local" description:"show history kept on this machine"`
	Clear bool `long:"clear" description:"clear history kept on this machine"`
}

func (c historyCmd) run(ctx context.Context, a *app, out io.Writer) error {
	records, err := a.gateway.History(ctx, c.Limit)
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}
	stats, err := a.gateway.Statistics(ctx)
	if err != nil {
		return fmt.Errorf("get statistics: %w", err)
	}
	fmt.Fprintln(out, panel.RenderHistory(a.theme, records, stats))
	return nil
}

func (c historyCmd) runLocal(opts Opts, out io.Writer) error {
	local, err := openLocal(opts)
	if err != nil {
		return err
	}
	if c.Clear {
		if err := local.ClearHistory(); err != nil {
			return err
		}
		okColor.Fprintln(out, "yerel geçmiş temizlendi")
		return nil
	}

	theme := panel.NewTheme(local.Theme())
	entries := local.History()
	if len(entries) == 0 {
		fmt.Fprintln(out, theme.Muted.Render("Henüz işlem geçmişi yok"))
		return nil
	}
	for i, e := range entries {
		if c.Limit > 0 && i >= c.Limit {
			break
		}
		title := e.Title
		if title == "" {
			title = strings.Join(strings.Fields(e.Input), " ")
			if r := []rune(title); len(r) > 60 {
				title = string(r[:60]) + "..."
			}
		}
		fmt.Fprintf(out, "%s %s %s\n", theme.Muted.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")), title,
			theme.Muted.Render(e.Format))
	}
	return nil
}

type themeCmd struct {
	Args struct {
		Name string `positional-arg-name:"light|dark"`
	} `positional-args:"yes"`
}

func (c themeCmd) run(opts Opts, out io.Writer) error {
	local, err := openLocal(opts)
	if err != nil {
		return err
	}
	if c.Args.Name == "" {
		fmt.Fprintln(out, local.Theme())
		return nil
	}
	if err := local.SetTheme(c.Args.Name); err != nil {
		return err
	}
	okColor.Fprintf(out, "tema: %s\n", c.Args.Name)
	return nil
}
