package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RuleType is the value type of a configurable setting
type RuleType string

// enum of rule types
const (
	RuleBoolean     RuleType = "boolean"
	RuleSelect      RuleType = "select"
	RuleMultiselect RuleType = "multiselect"
	RuleRange       RuleType = "range"
	RuleText        RuleType = "text"
)

// rule categories used for grouping
const (
	CategoryGeneral = "general"
	CategoryContent = "content"
	CategoryPrivacy = "privacy"
	CategoryOutput  = "output"
)

var categoryTitles = map[string]string{
	CategoryGeneral: "Genel Ayarlar",
	CategoryContent: "İçerik Ayarları",
	CategoryPrivacy: "Gizlilik Ayarları",
	CategoryOutput:  "Çıktı Ayarları",
}

var categoryOrder = []string{CategoryGeneral, CategoryContent, CategoryPrivacy, CategoryOutput}

// Bounds limits numeric values of range rules and the length of text rules
type Bounds struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// RuleOption is one allowed value of a select or multiselect rule
type RuleOption struct {
	Key         string `json:"option_key" db:"option_key"`
	Label       string `json:"option_label" db:"option_label"`
	Description string `json:"option_description" db:"option_description"`
	Order       int    `json:"display_order" db:"display_order"`
}

// RuleDefinition is read-only metadata describing one configurable setting.
// Default keeps the raw form stored by the backend, use DefaultValue for the normalized one.
type RuleDefinition struct {
	Key         string       `json:"rule_key"`
	Label       string       `json:"rule_name"`
	Description string       `json:"rule_description,omitempty"`
	Type        RuleType     `json:"rule_type"`
	Category    string       `json:"rule_category"`
	Default     string       `json:"default_value"`
	Bounds      *Bounds      `json:"validation_rules,omitempty"`
	Order       int          `json:"display_order"`
	Options     []RuleOption `json:"options,omitempty"`
}

// ValidationError reports user input outside the configured bounds of a rule
type ValidationError struct {
	Key    string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for %s: %s", e.Value, e.Key, e.Reason)
}

// DefaultValue returns the normalized default, free-form rules keep the raw string
func (r RuleDefinition) DefaultValue() any {
	if r.keepsString() {
		return r.Default
	}
	return NormalizeValue(r.Default)
}

// Coerce converts user input for this rule into a typed value and validates it
func (r RuleDefinition) Coerce(input string) (any, error) {
	switch r.Type {
	case RuleBoolean:
		b, ok := parseBool(input)
		if !ok {
			if lb, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(input))); err == nil {
				return lb, nil
			}
			return nil, &ValidationError{Key: r.Key, Value: input, Reason: "expected true or false"}
		}
		return b, nil
	case RuleRange:
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return nil, &ValidationError{Key: r.Key, Value: input, Reason: "expected integer"}
		}
		return n, r.Validate(n)
	case RuleText, RuleSelect, RuleMultiselect:
		return input, r.Validate(input)
	default:
		v := NormalizeValue(input)
		return v, r.Validate(v)
	}
}

// Validate checks the value against type, options and bounds of the rule
func (r RuleDefinition) Validate(v any) error {
	switch r.Type {
	case RuleBoolean:
		if _, ok := v.(bool); !ok {
			return &ValidationError{Key: r.Key, Value: v, Reason: "expected boolean"}
		}
	case RuleRange:
		n, ok := v.(int)
		if !ok {
			return &ValidationError{Key: r.Key, Value: v, Reason: "expected integer"}
		}
		if r.Bounds != nil && r.Bounds.Min != nil && n < *r.Bounds.Min {
			return &ValidationError{Key: r.Key, Value: v, Reason: fmt.Sprintf("must be at least %d", *r.Bounds.Min)}
		}
		if r.Bounds != nil && r.Bounds.Max != nil && n > *r.Bounds.Max {
			return &ValidationError{Key: r.Key, Value: v, Reason: fmt.Sprintf("must be at most %d", *r.Bounds.Max)}
		}
	case RuleSelect:
		if len(r.Options) > 0 && !r.hasOption(fmt.Sprint(v)) {
			return &ValidationError{Key: r.Key, Value: v, Reason: "not one of " + strings.Join(r.optionKeys(), ", ")}
		}
	case RuleMultiselect:
		for _, item := range splitList(fmt.Sprint(v)) {
			if len(r.Options) > 0 && !r.hasOption(item) {
				return &ValidationError{Key: r.Key, Value: v, Reason: fmt.Sprintf("%q is not one of %s", item, strings.Join(r.optionKeys(), ", "))}
			}
		}
	case RuleText:
		s := fmt.Sprint(v)
		if r.Bounds != nil && r.Bounds.Max != nil && len([]rune(s)) > *r.Bounds.Max {
			return &ValidationError{Key: r.Key, Value: v, Reason: fmt.Sprintf("longer than %d characters", *r.Bounds.Max)}
		}
	}
	return nil
}

// Format renders a value for display: booleans as Evet/Hayır, select values through
// their option label, empty values as Belirtilmemiş
func (r RuleDefinition) Format(v any) string {
	if r.Type == RuleBoolean {
		if b, ok := v.(bool); ok {
			if b {
				return "Evet"
			}
			return "Hayır"
		}
	}
	if v == nil || fmt.Sprint(v) == "" {
		return "Belirtilmemiş"
	}
	if r.Type == RuleSelect {
		for _, opt := range r.Options {
			if opt.Key == fmt.Sprint(v) {
				return opt.Label
			}
		}
	}
	return fmt.Sprint(v)
}

// rawString renders a free-form value as a string, lists joined with commas.
// Strings and nil come back untouched.
func rawString(v any) any {
	switch val := v.(type) {
	case nil, string:
		return v
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, fmt.Sprint(NormalizeValue(item)))
		}
		return strings.Join(items, ",")
	default:
		return fmt.Sprint(NormalizeValue(v))
	}
}

// keepsString reports whether values of the rule are opaque strings never coerced to bool or int
func (r RuleDefinition) keepsString() bool {
	return r.Type == RuleText || r.Type == RuleSelect || r.Type == RuleMultiselect
}

func (r RuleDefinition) hasOption(key string) bool {
	for _, opt := range r.Options {
		if opt.Key == key {
			return true
		}
	}
	return false
}

func (r RuleDefinition) optionKeys() []string {
	res := make([]string, 0, len(r.Options))
	for _, opt := range r.Options {
		res = append(res, opt.Key)
	}
	return res
}

func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

// Schema is the immutable, ordered set of rule definitions for a session
type Schema []RuleDefinition

// CategoryGroup is a titled group of rules sharing a category tag
type CategoryGroup struct {
	Key   string
	Title string
	Rules []RuleDefinition
}

// NewSchema builds a schema from the backend's keyed rules and options, attaching options
// to their rules. Rules are sorted by category, then display order, then key.
func NewSchema(rules map[string]RuleDefinition, options map[string][]RuleOption) Schema {
	res := make(Schema, 0, len(rules))
	for key, rule := range rules {
		if rule.Key == "" {
			rule.Key = key
		}
		if rule.Category == "" {
			rule.Category = CategoryGeneral
		}
		if opts, ok := options[key]; ok && len(opts) > 0 {
			sorted := make([]RuleOption, len(opts))
			copy(sorted, opts)
			sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
			rule.Options = sorted
		}
		res = append(res, rule)
	}
	sort.Slice(res, func(i, j int) bool {
		ci, cj := categoryRank(res[i].Category), categoryRank(res[j].Category)
		if ci != cj {
			return ci < cj
		}
		if res[i].Category != res[j].Category {
			return res[i].Category < res[j].Category
		}
		if res[i].Order != res[j].Order {
			return res[i].Order < res[j].Order
		}
		return res[i].Key < res[j].Key
	})
	return res
}

// Rule looks up a rule definition by key
func (s Schema) Rule(key string) (RuleDefinition, bool) {
	for _, r := range s {
		if r.Key == key {
			return r, true
		}
	}
	return RuleDefinition{}, false
}

// Defaults returns a Settings object populated with every rule's default value
func (s Schema) Defaults() Settings {
	res := make(Settings, len(s))
	for _, r := range s {
		res[r.Key] = r.DefaultValue()
	}
	return res
}

// Normalize converts raw values, as delivered by the backend, into a Settings object.
// Boolean and range rules get their string form coerced ("True" to true, "5" to 5),
// free-form rules (text, select, multiselect) keep the string as sent. Keys without
// a rule go through NormalizeValue.
func (s Schema) Normalize(raw map[string]any) Settings {
	res := make(Settings, len(raw))
	for k, v := range raw {
		rule, ok := s.Rule(k)
		switch {
		case !ok:
			res[k] = NormalizeValue(v)
		case rule.keepsString():
			res[k] = rawString(v)
		default:
			res[k] = NormalizeValue(v)
		}
	}
	return res
}

// Groups returns rules grouped by category in display order, empty groups skipped
func (s Schema) Groups() []CategoryGroup {
	byCategory := map[string][]RuleDefinition{}
	var keys []string
	for _, r := range s {
		if _, ok := byCategory[r.Category]; !ok {
			keys = append(keys, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	res := make([]CategoryGroup, 0, len(keys))
	for _, k := range keys {
		title, ok := categoryTitles[k]
		if !ok {
			title = "Diğer Ayarlar"
		}
		res = append(res, CategoryGroup{Key: k, Title: title, Rules: byCategory[k]})
	}
	return res
}

func categoryRank(c string) int {
	for i, k := range categoryOrder {
		if k == c {
			return i
		}
	}
	return len(categoryOrder)
}
