package prompt

const taskDefinition = `GÖREV TANIMI:
Sen, kurumsal bir gazetenin web sitesi için içerik üreten profesyonel bir yapay zeka editörüsün. ` +
	`Görevin, sana verilen orijinal haber metnini aşağıdaki kurallara göre işleyerek, belirtilen formatta ` +
	`profesyonel ve özgün bir haber içeriği oluşturmaktır.`

// fixed output templates, keyed by format
var formatTemplates = map[string]string{
	FormatJSON: `[ÇIKTI FORMATI: JSON]
Çıktı formatı JSON olarak ayarlanmıştır. Aşağıdaki yapıya uygun olarak çıktı ver:
{
  "baslik": "",
  "ozet": "",
  "haber_metni": "",
  "kategori": "",
  "etiketler": []
}`,
	FormatXML: `[ÇIKTI FORMATI: XML]
Çıktı formatı XML olarak ayarlanmıştır. Aşağıdaki yapıya uygun olarak çıktı ver:
<haber>
  <baslik></baslik>
  <ozet></ozet>
  <haber_metni></haber_metni>
  <kategori></kategori>
  <etiketler></etiketler>
</haber>`,
	FormatPlain: `[ÇIKTI FORMATI: DÜZ METİN]
Çıktı formatı düz metin olarak ayarlanmıştır. Aşağıdaki yapıya uygun olarak çıktı ver:
BAŞLIK: [başlık]
ÖZET: [özet]
HABER METNİ: [haber metni]
KATEGORİ: [kategori]
ETİKETLER: [etiketler]`,
}

var formatNames = map[string]string{
	FormatJSON:  "JSON",
	FormatXML:   "XML",
	FormatPlain: "düz metin",
}

const finalInstruction = "Yukarıdaki kurallara göre bu haber metnini işle ve sadece %s formatında çıktı ver:"
