package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, []byte(embeddedSchema))
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

func verify(cfg *Config, schemaData []byte) error {
	var schema map[string]any
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	// convert config to its JSON form, the schema describes that one
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	v := &verifier{defs: defs}
	v.check("", configMap, schema)
	if len(v.errs) > 0 {
		sort.Strings(v.errs)
		return fmt.Errorf("validation failed: %s", strings.Join(v.errs, "; "))
	}
	return nil
}

type verifier struct {
	defs map[string]any
	errs []string
}

// resolve follows a local $ref to its definition
func (v *verifier) resolve(node map[string]any) map[string]any {
	ref, ok := node["$ref"].(string)
	if !ok {
		return node
	}
	def, ok := v.defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any)
	if !ok {
		v.errs = append(v.errs, fmt.Sprintf("unknown schema reference %s", ref))
		return map[string]any{}
	}
	return v.resolve(def)
}

func (v *verifier) check(path string, value any, node map[string]any) {
	node = v.resolve(node)
	typ, _ := node["type"].(string)

	switch typ {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			v.errs = append(v.errs, fmt.Sprintf("%s: expected object", name(path)))
			return
		}
		props, _ := node["properties"].(map[string]any)
		for _, req := range asStrings(node["required"]) {
			if _, ok := obj[req]; !ok {
				v.errs = append(v.errs, fmt.Sprintf("%s is required", join(path, req)))
			}
		}
		for key, val := range obj {
			prop, ok := props[key].(map[string]any)
			if !ok {
				v.errs = append(v.errs, fmt.Sprintf("%s is not allowed by schema", join(path, key)))
				continue
			}
			v.check(join(path, key), val, prop)
		}
	case "string":
		if _, ok := value.(string); !ok {
			v.errs = append(v.errs, fmt.Sprintf("%s: expected string", name(path)))
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			v.errs = append(v.errs, fmt.Sprintf("%s: expected boolean", name(path)))
		}
	case "integer", "number":
		n, ok := value.(float64)
		if !ok {
			v.errs = append(v.errs, fmt.Sprintf("%s: expected %s", name(path), typ))
			return
		}
		if typ == "integer" && n != float64(int64(n)) {
			v.errs = append(v.errs, fmt.Sprintf("%s: expected integer", name(path)))
		}
		if lim, ok := node["minimum"].(float64); ok && n < lim {
			v.errs = append(v.errs, fmt.Sprintf("%s: %v is less than %v", name(path), n, lim))
		}
		if lim, ok := node["maximum"].(float64); ok && n > lim {
			v.errs = append(v.errs, fmt.Sprintf("%s: %v is greater than %v", name(path), n, lim))
		}
	}
}

func asStrings(v any) []string {
	items, _ := v.([]any)
	res := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			res = append(res, s)
		}
	}
	return res
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func name(path string) string {
	if path == "" {
		return "config"
	}
	return path
}
