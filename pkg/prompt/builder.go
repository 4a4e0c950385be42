// Package prompt assembles the instruction text sent to the language model from the user's
// settings and the raw article text. Build is pure and deterministic, it is used by the
// preview panel on the client and by the build-complete-prompt endpoint on the server.
package prompt

import (
	"fmt"
	"strings"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

// section keys, in prompt order
const (
	SectionTask         = "task"
	SectionRules        = "rules"
	SectionRequirements = "requirements"
	SectionCategories   = "categories"
	SectionFormat       = "format"
	SectionCustom       = "custom"
	SectionNews         = "news"
	SectionFinal        = "final"
)

// SectionOrder is the fixed order of prompt sections
var SectionOrder = []string{SectionTask, SectionRules, SectionRequirements, SectionCategories,
	SectionFormat, SectionCustom, SectionNews, SectionFinal}

// SectionTitles are display titles of prompt sections
var SectionTitles = map[string]string{
	SectionTask:         "Görev Tanımı",
	SectionRules:        "Kurallar",
	SectionRequirements: "İstenen Çıktılar",
	SectionCategories:   "Kategori Listesi",
	SectionFormat:       "Çıktı Formatı",
	SectionCustom:       "Özel Talimatlar",
	SectionNews:         "Orijinal Haber Metni",
	SectionFinal:        "Son Talimat",
}

// Section is one named block of the prompt
type Section struct {
	Key   string
	Title string
	Text  string
}

// output formats
const (
	FormatJSON  = "json"
	FormatXML   = "xml"
	FormatPlain = "plain"
)

// Build returns the complete prompt for articleText with the given settings.
// Non-empty sections are joined with a blank line.
func Build(articleText string, s domain.Settings) string {
	sections := Sections(articleText, s)
	parts := make([]string, 0, len(sections))
	for _, sec := range sections {
		parts = append(parts, sec.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Sections returns the non-empty prompt sections in order
func Sections(articleText string, s domain.Settings) []Section {
	format := Format(s)
	texts := map[string]string{
		SectionTask:         taskDefinition,
		SectionRules:        writingRules(s, format),
		SectionRequirements: requirements(s),
		SectionCategories:   categoryList(s),
		SectionFormat:       formatTemplates[format],
		SectionCustom:       customInstructions(s),
		SectionNews:         newsContent(articleText),
		SectionFinal:        fmt.Sprintf(finalInstruction, formatNames[format]),
	}
	all := make([]Section, 0, len(SectionOrder))
	for _, key := range SectionOrder {
		all = append(all, Section{Key: key, Title: SectionTitles[key], Text: texts[key]})
	}

	res := make([]Section, 0, len(all))
	for _, sec := range all {
		if strings.TrimSpace(sec.Text) == "" {
			continue
		}
		res = append(res, sec)
	}
	return res
}

// Format returns the effective output format, unknown values fall back to json
func Format(s domain.Settings) string {
	f := s.String(domain.KeyOutputFormat, FormatJSON)
	if _, ok := formatTemplates[f]; !ok {
		return FormatJSON
	}
	return f
}

// SectionSettings lists the setting keys each section depends on
var SectionSettings = map[string][]string{
	SectionRules: {domain.KeyWritingStyle, domain.KeyOutputFormat},
	SectionRequirements: {domain.KeyTitleCityInfo, domain.KeyNameCensorship, domain.KeyRemoveCompanyInfo,
		domain.KeyRemovePlateInfo, domain.KeyTargetCategory, domain.KeyTagCount},
	SectionCategories: {domain.KeyTargetCategory},
	SectionFormat:     {domain.KeyOutputFormat},
	SectionCustom:     {domain.KeyCustomInstructions},
	SectionFinal:      {domain.KeyOutputFormat},
}

// CategoryDisplayName maps a category key to its display name, unknown keys pass through
func CategoryDisplayName(key string) string {
	for _, c := range domain.CategoryNames {
		if c.Key == key {
			return c.Name
		}
	}
	return key
}

func writingRules(s domain.Settings, format string) string {
	var sb strings.Builder
	sb.WriteString("KURALLAR:\n")
	sb.WriteString("• ÖZGÜNLÜK: Metin tamamen yeniden yazılmalı, kopya olmamalıdır. Ancak orijinal haberdeki tüm temel bilgiler, " +
		"veriler, isimler ve tarihler korunmalıdır.\n")
	sb.WriteString("• KURUMSAL DİL: " + writingStyleRule(s.String(domain.KeyWritingStyle, "formal")) + "\n")
	fmt.Fprintf(&sb, "• ÇIKTININ FORMATI: Çıktı, yalnızca ve yalnızca aşağıda belirtilen %s yapısına uygun olmalıdır. "+
		"Cevabına asla açıklama veya ek metin ekleme, sadece %s çıktısı ver.", formatNames[format], formatNames[format])
	return sb.String()
}

func writingStyleRule(style string) string {
	switch style {
	case "formal":
		return "[FORMAL YAZIM STİLİ] Kullanılacak dil resmi, profesyonel ve bilgilendirici olmalıdır. " +
			"Argo veya clickbait ifadelerden kaçınılmalıdır."
	case "informal":
		return "[SAMİMİ YAZIM STİLİ] Kullanılacak dil samimi, sıcak ve anlaşılır olmalıdır. " +
			"Okuyucuyla yakın bir bağ kurmalı, ancak yine de profesyonel kalmalıdır."
	case "neutral":
		return "[NÖTR YAZIM STİLİ] Kullanılacak dil tamamen nötr, objektif ve duygusal yüklenmeden uzak " +
			"bilgilendirici olmalıdır. Sadece gerçekleri aktarmalıdır."
	default:
		return "[VARSAYILAN FORMAL YAZIM STİLİ] Kullanılacak dil resmi, profesyonel ve bilgilendirici olmalıdır. " +
			"Argo veya clickbait ifadelerden kaçınılmalıdır."
	}
}

func requirements(s domain.Settings) string {
	var sb strings.Builder
	sb.WriteString("İSTENEN ÇIKTILAR:\n")

	sb.WriteString("• ETKİLİ BAŞLIK: Haberi net yansıtan, profesyonel, dikkat çekici, yanıltıcı olmayan")
	switch s.String(domain.KeyTitleCityInfo, "") {
	case "exclude":
		sb.WriteString(", şehir bilgisi içermeyen")
	case "include":
		sb.WriteString(", şehir bilgisi içeren")
	}
	sb.WriteString(" bir başlık.\n")

	sb.WriteString("• HABER ÖZETİ: Haberin en önemli noktalarını içeren, 2-3 cümlelik, şehir bilgisi içeren kısa bir özet.\n")

	sb.WriteString("• ÖZGÜN HABER METNİ: Tüm bilgileri koruyarak, metni özgün cümlelerle baştan yaz")
	if clause := censorshipClause(s.String(domain.KeyNameCensorship, "")); clause != "" {
		sb.WriteString(". " + clause)
	}
	if s.Bool(domain.KeyRemoveCompanyInfo, false) {
		sb.WriteString(". Özel şirket bilgilerini metinden çıkar")
	}
	if s.Bool(domain.KeyRemovePlateInfo, false) {
		sb.WriteString(". Plaka bilgilerini metinden çıkar")
	}
	sb.WriteString(".\n")

	if category, ok := targetCategory(s); ok {
		fmt.Fprintf(&sb, "• MUHTEMEL KATEGORİ: Mümkünse \"%s\" kategorisini tercih et, uygun değilse en uygun kategoriyi seç.\n",
			CategoryDisplayName(category))
	} else {
		sb.WriteString("• MUHTEMEL KATEGORİ: Verilen kategori listesinden en uygun olanı seç.\n")
	}

	fmt.Fprintf(&sb, "• ETİKETLER: Haberle ilgili, SEO uyumlu %s adet etiket oluştur ve bunları bir dizi (array) olarak listele.",
		s.String(domain.KeyTagCount, "5"))
	return sb.String()
}

// censorshipClause returns nothing for none, unset and unrecognized values
func censorshipClause(v string) string {
	switch v {
	case "full":
		return "İsimleri tamamen sansürle (örn: A.B.)"
	case "partial":
		return "İsimleri kısmi sansürle (örn: Ahmet K.)"
	}
	return ""
}

// targetCategory returns the preferred category key, false for auto, empty or blank values
func targetCategory(s domain.Settings) (string, bool) {
	v := strings.TrimSpace(s.String(domain.KeyTargetCategory, ""))
	if v == "" || v == "auto" {
		return "", false
	}
	return v, true
}

func categoryList(s domain.Settings) string {
	names := make([]string, 0, len(domain.CategoryNames))
	for _, c := range domain.CategoryNames {
		names = append(names, c.Name)
	}
	list := strings.Join(names, ", ")

	category, ok := targetCategory(s)
	if !ok {
		return "KATEGORİ LİSTESİ:\n" + list
	}
	name := CategoryDisplayName(category)
	return fmt.Sprintf("KATEGORİ LİSTESİ (SEÇİLİ: %s):\n%s\n\nÖNEM: Yukarıdaki listeden \"%s\" kategorisi tercih edilmektedir.", name, list, name)
}

func customInstructions(s domain.Settings) string {
	text := strings.TrimSpace(s.String(domain.KeyCustomInstructions, ""))
	if text == "" {
		return ""
	}
	return "ÖZEL TALİMATLAR:\n" + text
}

func newsContent(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return "ORİJİNAL HABER METNİ:\n" + text
}
