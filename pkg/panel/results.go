package panel

import (
	"fmt"
	"strings"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

// RenderResult renders a processed article
func RenderResult(t Theme, res *domain.ProcessResult) string {
	if res == nil {
		return t.box("Sonuç", t.Muted.Render("Sonuç yok"))
	}
	if res.Title == "" && res.Body == "" {
		return t.box("Sonuç", res.ProcessedText)
	}

	var sb strings.Builder
	row := func(label, value string) {
		if value == "" {
			value = "Belirtilmemiş"
		}
		sb.WriteString(t.Label.Render(label+":") + " " + t.Value.Render(value) + "\n")
	}
	row("Başlık", res.Title)
	row("Özet", res.Summary)
	row("Kategori", res.Category)
	row("Etiketler", strings.Join(res.Tags, ", "))
	sb.WriteString("\n" + res.Body + "\n")
	sb.WriteString("\n" + t.Muted.Render(fmt.Sprintf("format: %s, süre: %d ms", res.Format, res.DurationMs)))
	return t.box("Sonuç", sb.String())
}

// RenderHistory renders processing history records with optional statistics
func RenderHistory(t Theme, records []domain.HistoryRecord, stats *domain.Statistics) string {
	var sb strings.Builder
	if stats != nil {
		fmt.Fprintf(&sb, "%s %d  %s %d  %s %d  %s %.0f ms\n\n",
			t.Label.Render("Toplam:"), stats.Total,
			t.Label.Render("Başarılı:"), stats.Completed,
			t.Label.Render("Hatalı:"), stats.Failed,
			t.Label.Render("Ortalama:"), stats.AvgDurationMs)
	}
	if len(records) == 0 {
		sb.WriteString(t.Muted.Render("Henüz işlem geçmişi yok"))
		return t.box("İşlem Geçmişi", sb.String())
	}

	for _, rec := range records {
		status := t.Value.Render(string(rec.Status))
		if rec.Status == domain.StatusFailed {
			status = t.Error.Render(string(rec.Status))
		}
		fmt.Fprintf(&sb, "#%d %s %s %s\n", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04"), status,
			t.Muted.Render(excerpt(rec.OriginalText, 60)))
		if rec.ErrorMessage != "" {
			sb.WriteString("   " + t.Error.Render(rec.ErrorMessage) + "\n")
		}
	}
	return t.box("İşlem Geçmişi", strings.TrimRight(sb.String(), "\n"))
}

func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
