package llm

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

const (
	formatJSON  = "json"
	formatXML   = "xml"
	formatPlain = "plain"
)

// article is the structure every output format describes
type article struct {
	Title    string  `json:"baslik" xml:"baslik"`
	Summary  string  `json:"ozet" xml:"ozet"`
	Body     string  `json:"haber_metni" xml:"haber_metni"`
	Category string  `json:"kategori" xml:"kategori"`
	Tags     tagList `json:"etiketler" xml:"-"`
	XMLTags  xmlTags `json:"-" xml:"etiketler"`
}

// tagList accepts tags as a JSON array or as a comma separated string
type tagList []string

func (t *tagList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*t = cleanTags(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("etiketler: %w", err)
	}
	*t = splitTags(s)
	return nil
}

// xmlTags holds either <etiket> children or a comma separated text
type xmlTags struct {
	Items []string `xml:"etiket"`
	Text  string   `xml:",chardata"`
}

func (x xmlTags) list() []string {
	if len(x.Items) > 0 {
		return cleanTags(x.Items)
	}
	return splitTags(x.Text)
}

// parseResponse converts raw model output into a result, keeping the raw text in ProcessedText
func parseResponse(content, format string) (*domain.ProcessResult, error) {
	var (
		a   article
		err error
	)
	switch format {
	case formatXML:
		a, err = parseXML(content)
	case formatPlain:
		a = parsePlain(content)
	default:
		format = formatJSON
		a, err = parseJSON(content)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ProcessResult{
		Title:         a.Title,
		Summary:       a.Summary,
		Body:          a.Body,
		Category:      a.Category,
		Tags:          a.Tags,
		Format:        format,
		ProcessedText: strings.TrimSpace(content),
	}, nil
}

func parseJSON(content string) (article, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return article{}, fmt.Errorf("no json object found: %w", errUnparsable)
	}

	var a article
	if err := json.Unmarshal([]byte(content[start:end+1]), &a); err != nil {
		return article{}, fmt.Errorf("failed to parse json: %v: %w", err, errUnparsable)
	}
	if a.Title == "" && a.Body == "" {
		return article{}, fmt.Errorf("json has neither title nor body: %w", errUnparsable)
	}
	return trimArticle(a), nil
}

func parseXML(content string) (article, error) {
	start := strings.Index(content, "<haber")
	end := strings.LastIndex(content, "</haber>")
	if start == -1 || end == -1 || start >= end {
		return article{}, fmt.Errorf("no <haber> element found: %w", errUnparsable)
	}

	var a article
	if err := xml.Unmarshal([]byte(content[start:end+len("</haber>")]), &a); err != nil {
		return article{}, fmt.Errorf("failed to parse xml: %v: %w", err, errUnparsable)
	}
	a.Tags = a.XMLTags.list()
	if a.Title == "" && a.Body == "" {
		return article{}, fmt.Errorf("xml has neither title nor body: %w", errUnparsable)
	}
	return trimArticle(a), nil
}

var plainLabels = []struct {
	prefix string
	set    func(a *article, v string)
}{
	{"BAŞLIK:", func(a *article, v string) { a.Title = v }},
	{"ÖZET:", func(a *article, v string) { a.Summary = v }},
	{"HABER METNİ:", func(a *article, v string) { a.Body = v }},
	{"KATEGORİ:", func(a *article, v string) { a.Category = v }},
	{"ETİKETLER:", func(a *article, v string) { a.Tags = splitTags(v) }},
}

// parsePlain reads labeled blocks, a value runs until the next label.
// Text without any label becomes the body.
func parsePlain(content string) article {
	var a article
	current := -1
	var buf []string
	flush := func() {
		if current >= 0 {
			plainLabels[current].set(&a, strings.TrimSpace(strings.Join(buf, "\n")))
		}
		buf = buf[:0]
	}

	found := false
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimLeft(strings.TrimSpace(line), "*# ")
		matched := false
		for i, l := range plainLabels {
			if strings.HasPrefix(trimmed, l.prefix) {
				flush()
				current, matched, found = i, true, true
				buf = append(buf, strings.TrimLeft(strings.TrimPrefix(trimmed, l.prefix), "* "))
				break
			}
		}
		if !matched && current >= 0 {
			buf = append(buf, line)
		}
	}
	flush()

	if !found {
		a.Body = strings.TrimSpace(content)
	}
	return a
}

func trimArticle(a article) article {
	a.Title = strings.TrimSpace(a.Title)
	a.Summary = strings.TrimSpace(a.Summary)
	a.Body = strings.TrimSpace(a.Body)
	a.Category = strings.TrimSpace(a.Category)
	return a
}

func splitTags(s string) []string {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	return cleanTags(strings.Split(s, ","))
}

func cleanTags(tags []string) []string {
	res := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.Trim(strings.TrimSpace(t), `"'#`)
		if t != "" {
			res = append(res, t)
		}
	}
	return res
}
