package domain

// setting keys consumed by the prompt builder
const (
	KeyWritingStyle       = "writingStyle"
	KeyTargetCategory     = "targetCategory"
	KeyTitleCityInfo      = "titleCityInfo"
	KeyNameCensorship     = "nameCensorship"
	KeyRemoveCompanyInfo  = "removeCompanyInfo"
	KeyRemovePlateInfo    = "removePlateInfo"
	KeyOutputFormat       = "outputFormat"
	KeyTagCount           = "tagCount"
	KeyCustomInstructions = "customInstructions"
)

// DefaultSchema returns the built-in rule set. The backend seeds its database from it and
// the client falls back to it when the config endpoint is unavailable.
func DefaultSchema() Schema {
	minTags, maxTags, maxCustom := 1, 10, 2000
	rules := map[string]RuleDefinition{
		KeyWritingStyle: {
			Label: "Yazım Stili", Type: RuleSelect, Category: CategoryGeneral, Default: "formal", Order: 1,
			Description: "Haber metninin dil tonu",
		},
		KeyTargetCategory: {
			Label: "Hedef Kategori", Type: RuleSelect, Category: CategoryContent, Default: "auto", Order: 1,
			Description: "Tercih edilen haber kategorisi",
		},
		KeyTitleCityInfo: {
			Label: "Başlıkta Şehir Bilgisi", Type: RuleSelect, Category: CategoryContent, Default: "exclude", Order: 2,
		},
		KeyCustomInstructions: {
			Label: "Özel Talimatlar", Type: RuleText, Category: CategoryContent, Default: "", Order: 3,
			Bounds: &Bounds{Max: &maxCustom},
		},
		KeyNameCensorship: {
			Label: "İsim Sansürleme", Type: RuleSelect, Category: CategoryPrivacy, Default: "partial", Order: 1,
		},
		KeyRemoveCompanyInfo: {
			Label: "Şirket Bilgisi Kaldır", Type: RuleBoolean, Category: CategoryPrivacy, Default: "True", Order: 2,
		},
		KeyRemovePlateInfo: {
			Label: "Plaka Bilgisi Kaldır", Type: RuleBoolean, Category: CategoryPrivacy, Default: "True", Order: 3,
		},
		KeyOutputFormat: {
			Label: "Çıktı Formatı", Type: RuleSelect, Category: CategoryOutput, Default: "json", Order: 1,
		},
		KeyTagCount: {
			Label: "Etiket Sayısı", Type: RuleRange, Category: CategoryOutput, Default: "5", Order: 2,
			Bounds: &Bounds{Min: &minTags, Max: &maxTags},
		},
	}

	options := map[string][]RuleOption{
		KeyWritingStyle: {
			{Key: "formal", Label: "Resmi", Order: 1},
			{Key: "informal", Label: "Samimi", Order: 2},
			{Key: "neutral", Label: "Nötr", Order: 3},
		},
		KeyTargetCategory: categoryOptions(),
		KeyTitleCityInfo: {
			{Key: "exclude", Label: "Hayır, eklenmesin", Order: 1},
			{Key: "include", Label: "Evet, eklensin", Order: 2},
			{Key: "auto", Label: "Otomatik", Order: 3},
		},
		KeyNameCensorship: {
			{Key: "none", Label: "Sansürleme Yok", Order: 1},
			{Key: "partial", Label: "Kısmi Sansür", Order: 2},
			{Key: "full", Label: "Tam Sansür", Order: 3},
		},
		KeyOutputFormat: {
			{Key: "json", Label: "JSON", Order: 1},
			{Key: "xml", Label: "XML", Order: 2},
			{Key: "plain", Label: "Düz Metin", Order: 3},
		},
	}

	return NewSchema(rules, options)
}

// CategoryNames maps category keys to display names, in list order
var CategoryNames = []struct{ Key, Name string }{
	{"asayis", "Asayiş"},
	{"gundem", "Gündem"},
	{"ekonomi", "Ekonomi"},
	{"siyaset", "Siyaset"},
	{"spor", "Spor"},
	{"teknoloji", "Teknoloji"},
	{"saglik", "Sağlık"},
	{"yasam", "Yaşam"},
	{"egitim", "Eğitim"},
	{"dunya", "Dünya"},
	{"kultur", "Kültür & Sanat"},
	{"magazin", "Magazin"},
	{"genel", "Genel"},
}

func categoryOptions() []RuleOption {
	res := []RuleOption{{Key: "auto", Label: "Otomatik Seç", Order: 0}}
	for i, c := range CategoryNames {
		res = append(res, RuleOption{Key: c.Key, Label: c.Name, Order: i + 1})
	}
	return res
}
