package panel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/panel/mocks"
	"github.com/newsdesk/newsdesk/pkg/prompt"
	"github.com/newsdesk/newsdesk/pkg/settings"
	settingsmocks "github.com/newsdesk/newsdesk/pkg/settings/mocks"
)

type testPanels struct {
	store    *settings.Store
	gateway  *settingsmocks.GatewayMock
	sidebar  *Sidebar
	modal    *Modal
	preview  *Preview
	tooltips *Tooltips
}

func setupPanels(t *testing.T, user domain.Settings) *testPanels {
	t.Helper()
	gw := &settingsmocks.GatewayMock{
		FetchConfigFunc:       func(ctx context.Context) (domain.Schema, error) { return domain.DefaultSchema(), nil },
		FetchUserSettingsFunc: func(ctx context.Context) (domain.Settings, error) { return user.Clone(), nil },
		SaveUserSettingsFunc:  func(ctx context.Context, s domain.Settings) error { return nil },
	}
	store := settings.New(settings.Config{Gateway: gw, Logger: lgr.NoOp})
	theme := NewTheme("light")
	p := &testPanels{
		store:    store,
		gateway:  gw,
		sidebar:  NewSidebar(store, theme),
		modal:    NewModal(store, theme),
		preview:  NewPreview(theme, nil, lgr.NoOp),
		tooltips: NewTooltips(store, theme),
	}
	store.AddListener(p.sidebar)
	store.AddListener(p.modal)
	store.AddListener(p.preview)
	store.AddListener(p.tooltips)
	require.True(t, store.Init(context.Background()))
	return p
}

func TestPanels_InitialRender(t *testing.T) {
	p := setupPanels(t, domain.Settings{"tagCount": 7, "writingStyle": "neutral"})

	view := p.sidebar.View()
	assert.Contains(t, view, "Mevcut Ayarlar")
	assert.Contains(t, view, "Genel Ayarlar")
	assert.Contains(t, view, "Yazım Stili: Nötr")
	assert.Contains(t, view, "Etiket Sayısı: 7")
	assert.Contains(t, view, "Şirket Bilgisi Kaldır: Evet")
	assert.Contains(t, view, "Özel Talimatlar: Belirtilmemiş")
	assert.NotContains(t, view, "Varsayılan ayarlar")

	assert.Contains(t, p.preview.Prompt(), "SEO uyumlu 7 adet etiket")
	assert.Contains(t, p.tooltips.For(prompt.SectionRequirements), "Etiket Sayısı: 7")
	assert.Equal(t, 7, p.modal.Draft()["tagCount"])
}

func TestPanels_CoherentAfterModalSubmit(t *testing.T) {
	p := setupPanels(t, domain.Settings{})
	p.preview.SetText("Ankara'da yeni bir park açıldı.")

	require.NoError(t, p.modal.Set("tagCount", "3"))
	require.NoError(t, p.modal.Set("removePlateInfo", "false"))
	require.NoError(t, p.modal.Set("outputFormat", "xml"))
	assert.Equal(t, []string{"outputFormat", "removePlateInfo", "tagCount"}, p.modal.Dirty())
	assert.Contains(t, p.modal.View(), "* Etiket Sayısı [tagCount]:")

	changes, err := p.modal.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Changes{"tagCount": 3, "removePlateInfo": false, "outputFormat": "xml"}, changes)
	require.Len(t, p.gateway.SaveUserSettingsCalls(), 1)

	assert.Equal(t, p.store.GetSettings(), p.modal.Draft(), "modal reseeded from the update event")
	assert.Empty(t, p.modal.Dirty())
	assert.Contains(t, p.sidebar.View(), "Etiket Sayısı: 3")
	assert.Contains(t, p.sidebar.View(), "Plaka Bilgisi Kaldır: Hayır")
	assert.Contains(t, p.sidebar.View(), "Çıktı Formatı: XML")
	assert.Equal(t, 2, p.sidebar.Renders())

	promptText := p.preview.Prompt()
	assert.Contains(t, promptText, "[ÇIKTI FORMATI: XML]")
	assert.Contains(t, promptText, "SEO uyumlu 3 adet etiket")
	assert.Contains(t, promptText, "ORİJİNAL HABER METNİ:\nAnkara'da yeni bir park açıldı.")
	assert.Equal(t, prompt.Build("Ankara'da yeni bir park açıldı.", p.store.GetSettings()), promptText)
	assert.Contains(t, p.tooltips.For(prompt.SectionFormat), "Çıktı Formatı: XML")
}

func TestPanels_SubmitWithoutChanges(t *testing.T) {
	p := setupPanels(t, domain.Settings{})
	changes, err := p.modal.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Len(t, p.gateway.SaveUserSettingsCalls(), 0)
	assert.Equal(t, 1, p.sidebar.Renders())
}

func TestPanels_SaveFailureKeepsAttemptedValues(t *testing.T) {
	p := setupPanels(t, domain.Settings{})
	p.gateway.SaveUserSettingsFunc = func(ctx context.Context, s domain.Settings) error {
		return errors.New("status 503")
	}

	require.NoError(t, p.modal.Set("nameCensorship", "full"))
	_, err := p.modal.Submit(context.Background())
	require.Error(t, err)
	var perr *settings.PersistenceError
	require.True(t, errors.As(err, &perr))

	assert.Equal(t, "full", p.modal.Draft()["nameCensorship"], "form is not reverted")
	assert.Equal(t, []string{"nameCensorship"}, p.modal.Dirty())
	assert.Contains(t, p.modal.View(), "tekrar deneyin")
	assert.Equal(t, 1, p.sidebar.Renders(), "no notification after a failed save")
}

func TestModal_LocalValidation(t *testing.T) {
	store := &mocks.SettingsStoreMock{
		SchemaFunc: domain.DefaultSchema,
		UpdateFunc: func(ctx context.Context, partial domain.Settings) (domain.Changes, error) {
			return domain.Changes{}, nil
		},
	}
	modal := NewModal(store, NewTheme("dark"))
	require.NoError(t, modal.OnSettings(settings.Event{Type: settings.EventInit, Settings: domain.DefaultSchema().Defaults()}))

	tests := []struct {
		key, input string
	}{
		{"tagCount", "42"},
		{"tagCount", "many"},
		{"removeCompanyInfo", "maybe"},
		{"outputFormat", "yaml"},
	}
	for _, tt := range tests {
		err := modal.Set(tt.key, tt.input)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr), "%s=%s: %v", tt.key, tt.input, err)
		assert.Equal(t, tt.key, verr.Key)
	}

	require.Error(t, modal.Set("noSuchKey", "1"))
	assert.Empty(t, modal.Dirty())
	assert.Equal(t, 5, modal.Draft()["tagCount"])
	assert.Len(t, store.UpdateCalls(), 0, "invalid input never reaches the store")
}

func TestSidebar_Degraded(t *testing.T) {
	sidebar := NewSidebar(&mocks.SettingsStoreMock{SchemaFunc: domain.DefaultSchema}, NewTheme("light"))
	assert.Contains(t, sidebar.View(), "yükleniyor")

	sidebar.SetDegraded(true)
	require.NoError(t, sidebar.OnSettings(settings.Event{Type: settings.EventInit, Settings: domain.DefaultSchema().Defaults()}))
	assert.Contains(t, sidebar.View(), "Varsayılan ayarlar kullanılıyor")
	assert.Contains(t, sidebar.View(), "İsim Sansürleme: Kısmi Sansür")
}

func TestPreview_RemotePrompt(t *testing.T) {
	remote := &mocks.RemoteBuilderMock{
		BuildCompletePromptFunc: func(ctx context.Context, s domain.Settings, newsText string) (string, error) {
			return "REMOTE " + newsText, nil
		},
	}
	preview := NewPreview(NewTheme("light"), remote, lgr.NoOp)
	require.NoError(t, preview.OnSettings(settings.Event{Settings: domain.Settings{"tagCount": 2}}))
	preview.SetText("haber")

	res, ok := preview.RemotePrompt(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "REMOTE haber", res)
	calls := remote.BuildCompletePromptCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.Settings{"tagCount": 2}, calls[0].S)

	remote.BuildCompletePromptFunc = func(ctx context.Context, s domain.Settings, newsText string) (string, error) {
		return "", errors.New("offline")
	}
	res, ok = preview.RemotePrompt(context.Background())
	assert.False(t, ok)
	assert.Equal(t, preview.Prompt(), res)
	assert.Contains(t, res, "SEO uyumlu 2 adet etiket")

	noRemote := NewPreview(NewTheme("light"), nil, lgr.NoOp)
	res, ok = noRemote.RemotePrompt(context.Background())
	assert.False(t, ok)
	assert.Equal(t, noRemote.Prompt(), res)
}

func TestTooltips_View(t *testing.T) {
	tips := NewTooltips(&mocks.SettingsStoreMock{SchemaFunc: domain.DefaultSchema}, NewTheme("light"))
	require.NoError(t, tips.OnSettings(settings.Event{Settings: domain.Settings{
		"customInstructions": "Kısa yaz", "targetCategory": "spor", "unknownRule": 1}}))

	assert.Equal(t, "Özel Talimatlar: Kısa yaz", tips.For(prompt.SectionCustom))
	assert.Contains(t, tips.For(prompt.SectionCategories), "Hedef Kategori: Spor")
	assert.Empty(t, tips.For(prompt.SectionTask))

	view := tips.View()
	assert.Contains(t, view, "Kurallar")
	assert.Contains(t, view, "Özel Talimatlar")
	assert.NotContains(t, view, "Görev Tanımı")
}

func TestRenderResultAndHistory(t *testing.T) {
	theme := NewTheme("light")

	res := RenderResult(theme, &domain.ProcessResult{Title: "Park açıldı", Tags: []string{"ankara", "park"},
		Body: "Metin", Format: "json", DurationMs: 120})
	assert.Contains(t, res, "Başlık: Park açıldı")
	assert.Contains(t, res, "Etiketler: ankara, park")
	assert.Contains(t, res, "Özet: Belirtilmemiş")

	raw := RenderResult(theme, &domain.ProcessResult{ProcessedText: "BAŞLIK: x"})
	assert.Contains(t, raw, "BAŞLIK: x")
	assert.Contains(t, RenderResult(theme, nil), "Sonuç yok")

	ts := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	hist := RenderHistory(theme, []domain.HistoryRecord{
		{ID: 2, OriginalText: "İkinci   haber\nmetni", Status: domain.StatusFailed, ErrorMessage: "llm timeout", CreatedAt: ts},
		{ID: 1, OriginalText: "Birinci haber", Status: domain.StatusCompleted, CreatedAt: ts},
	}, &domain.Statistics{Total: 2, Completed: 1, Failed: 1, AvgDurationMs: 99.6})
	assert.Contains(t, hist, "Toplam: 2")
	assert.Contains(t, hist, "Ortalama: 100 ms")
	assert.Contains(t, hist, "#2 2025-03-01 10:30 failed İkinci haber metni")
	assert.Contains(t, hist, "llm timeout")

	assert.Contains(t, RenderHistory(theme, nil, nil), "Henüz işlem geçmişi yok")
	assert.Equal(t, "abc...", excerpt("abcdef", 3))
}
