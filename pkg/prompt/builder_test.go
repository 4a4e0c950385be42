package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

func baseSettings() domain.Settings {
	return domain.Settings{
		domain.KeyTitleCityInfo:      "exclude",
		domain.KeyNameCensorship:     "partial",
		domain.KeyTargetCategory:     "auto",
		domain.KeyTagCount:           3,
		domain.KeyOutputFormat:       "json",
		domain.KeyRemoveCompanyInfo:  true,
		domain.KeyRemovePlateInfo:    false,
		domain.KeyCustomInstructions: "",
	}
}

func TestBuild_Scenario(t *testing.T) {
	res := Build("Ankara'da dün akşam saatlerinde bir trafik kazası meydana geldi.", baseSettings())

	assert.Contains(t, res, formatTemplates[FormatJSON])
	assert.Contains(t, res, "SEO uyumlu 3 adet etiket")
	assert.Contains(t, res, ", şehir bilgisi içermeyen bir başlık.")
	assert.Contains(t, res, "İsimleri kısmi sansürle (örn: Ahmet K.)")
	assert.Contains(t, res, "Özel şirket bilgilerini metinden çıkar")
	assert.NotContains(t, res, "Plaka bilgilerini metinden çıkar")
	assert.Contains(t, res, "Verilen kategori listesinden en uygun olanı seç.")
	assert.Contains(t, res, "ORİJİNAL HABER METNİ:\nAnkara'da dün akşam")
	assert.True(t, strings.HasSuffix(res, "sadece JSON formatında çıktı ver:"))

	assert.NotContains(t, res, "[ÇIKTI FORMATI: XML]")
	assert.NotContains(t, res, "<haber>")
	assert.NotContains(t, res, "[ÇIKTI FORMATI: DÜZ METİN]")
	assert.NotContains(t, res, "ÖZEL TALİMATLAR", "empty custom instructions are omitted")
	assert.NotContains(t, res, "\n\n\n", "no empty sections between separators")
}

func TestBuild_Deterministic(t *testing.T) {
	s := baseSettings()
	s[domain.KeyTargetCategory] = "ekonomi"
	s[domain.KeyCustomInstructions] = "Kısa tut."
	before := s.Clone()
	assert.Equal(t, Build("metin", s), Build("metin", s))
	assert.Equal(t, before, s, "input is not modified")
}

func TestBuild_SectionOrder(t *testing.T) {
	s := baseSettings()
	s[domain.KeyCustomInstructions] = "Rakamları yazıyla yaz."
	sections := Sections("haber", s)

	keys := make([]string, 0, len(sections))
	for _, sec := range sections {
		keys = append(keys, sec.Key)
	}
	assert.Equal(t, []string{SectionTask, SectionRules, SectionRequirements, SectionCategories,
		SectionFormat, SectionCustom, SectionNews, SectionFinal}, keys)

	parts := make([]string, 0, len(sections))
	for _, sec := range sections {
		parts = append(parts, sec.Text)
	}
	assert.Equal(t, strings.Join(parts, "\n\n"), Build("haber", s))
}

func TestBuild_EmptyArticle(t *testing.T) {
	sections := Sections("   ", baseSettings())
	for _, sec := range sections {
		assert.NotEqual(t, SectionNews, sec.Key)
	}
	assert.Len(t, sections, 6)
}

func TestBuild_OutputFormats(t *testing.T) {
	tests := []struct {
		format   string
		want     string
		wantTail string
		absent   []string
	}{
		{"json", "[ÇIKTI FORMATI: JSON]", "sadece JSON formatında çıktı ver:", []string{"<haber>", "DÜZ METİN]"}},
		{"xml", "[ÇIKTI FORMATI: XML]\n", "sadece XML formatında çıktı ver:", []string{`"baslik": ""`, "DÜZ METİN]"}},
		{"plain", "[ÇIKTI FORMATI: DÜZ METİN]", "sadece düz metin formatında çıktı ver:", []string{"<haber>", `"baslik": ""`}},
		{"yaml", "[ÇIKTI FORMATI: JSON]", "sadece JSON formatında çıktı ver:", []string{"<haber>", "DÜZ METİN]"}},
		{"", "[ÇIKTI FORMATI: JSON]", "sadece JSON formatında çıktı ver:", []string{"<haber>"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			s := baseSettings()
			s[domain.KeyOutputFormat] = tt.format
			res := Build("haber", s)
			assert.Contains(t, res, tt.want)
			assert.True(t, strings.HasSuffix(res, tt.wantTail), res)
			for _, a := range tt.absent {
				assert.NotContains(t, res, a)
			}
		})
	}
}

func TestBuild_NameCensorship(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"full", "İsimleri tamamen sansürle (örn: A.B.)"},
		{"partial", "İsimleri kısmi sansürle (örn: Ahmet K.)"},
		{"none", ""},
		{"something", ""},
		{nil, ""},
	}

	for _, tt := range tests {
		s := baseSettings()
		if tt.value == nil {
			delete(s, domain.KeyNameCensorship)
		} else {
			s[domain.KeyNameCensorship] = tt.value
		}
		res := Build("haber", s)
		if tt.want == "" {
			assert.NotContains(t, res, "sansürle", "value %v", tt.value)
			assert.Contains(t, res, "baştan yaz. Özel şirket bilgilerini")
			continue
		}
		assert.Contains(t, res, "baştan yaz. "+tt.want)
	}
}

func TestBuild_TitleCityInfo(t *testing.T) {
	tests := map[string]string{
		"exclude": "yanıltıcı olmayan, şehir bilgisi içermeyen bir başlık.",
		"include": "yanıltıcı olmayan, şehir bilgisi içeren bir başlık.",
		"auto":    "yanıltıcı olmayan bir başlık.",
		"":        "yanıltıcı olmayan bir başlık.",
	}
	for value, want := range tests {
		s := baseSettings()
		s[domain.KeyTitleCityInfo] = value
		assert.Contains(t, Build("haber", s), want, "value %q", value)
	}
}

func TestBuild_TargetCategory(t *testing.T) {
	t.Run("auto and blank values", func(t *testing.T) {
		for _, v := range []string{"auto", "", "   "} {
			s := baseSettings()
			s[domain.KeyTargetCategory] = v
			res := Build("haber", s)
			assert.Contains(t, res, "Verilen kategori listesinden en uygun olanı seç.")
			assert.Contains(t, res, "KATEGORİ LİSTESİ:\nAsayiş, Gündem")
			assert.NotContains(t, res, "SEÇİLİ")
		}
	})

	t.Run("mapped category", func(t *testing.T) {
		s := baseSettings()
		s[domain.KeyTargetCategory] = "kultur"
		res := Build("haber", s)
		assert.Contains(t, res, `Mümkünse "Kültür & Sanat" kategorisini tercih et`)
		assert.Contains(t, res, "KATEGORİ LİSTESİ (SEÇİLİ: Kültür & Sanat):")
		assert.Contains(t, res, `ÖNEM: Yukarıdaki listeden "Kültür & Sanat" kategorisi tercih edilmektedir.`)
	})

	t.Run("unmapped category passes through", func(t *testing.T) {
		s := baseSettings()
		s[domain.KeyTargetCategory] = "bilim"
		res := Build("haber", s)
		assert.Contains(t, res, `Mümkünse "bilim" kategorisini tercih et`)
		assert.Contains(t, res, "KATEGORİ LİSTESİ (SEÇİLİ: bilim):")
	})
}

func TestBuild_TagCountAndBooleans(t *testing.T) {
	s := domain.Settings{}
	res := Build("haber", s)
	assert.Contains(t, res, "SEO uyumlu 5 adet etiket", "default tag count")
	assert.NotContains(t, res, "Özel şirket bilgilerini", "missing removal flags add no clause")
	assert.NotContains(t, res, "Plaka bilgilerini")
	assert.Contains(t, res, "[FORMAL YAZIM STİLİ]")
	assert.Contains(t, res, "baştan yaz.\n", "sentence closed without removal clauses")

	res = Build("haber", domain.Settings{domain.KeyRemoveCompanyInfo: "True", domain.KeyRemovePlateInfo: true})
	assert.Contains(t, res, "Özel şirket bilgilerini metinden çıkar. Plaka bilgilerini metinden çıkar.")

	s = domain.Settings{domain.KeyTagCount: "8", domain.KeyRemoveCompanyInfo: "false", domain.KeyWritingStyle: "poetic"}
	res = Build("haber", s)
	assert.Contains(t, res, "SEO uyumlu 8 adet etiket")
	assert.NotContains(t, res, "Özel şirket bilgilerini")
	assert.Contains(t, res, "[VARSAYILAN FORMAL YAZIM STİLİ]")
}

func TestBuild_CustomInstructions(t *testing.T) {
	s := baseSettings()
	s[domain.KeyCustomInstructions] = "  Resmi kurum adlarını kısaltma.  "
	sections := Sections("haber", s)
	var custom *Section
	for i := range sections {
		if sections[i].Key == SectionCustom {
			custom = &sections[i]
		}
	}
	require.NotNil(t, custom)
	assert.Equal(t, "ÖZEL TALİMATLAR:\nResmi kurum adlarını kısaltma.", custom.Text)
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Sağlık", CategoryDisplayName("saglik"))
	assert.Equal(t, "Genel", CategoryDisplayName("genel"))
	assert.Equal(t, "other", CategoryDisplayName("other"))
}
