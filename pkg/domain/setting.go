package domain

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Settings is the canonical key-value record of user-chosen article-processing options.
// After normalization every value is a bool, an int or a string. Keys are fixed by the
// rule schema, but unknown keys are preserved and passed through untouched.
type Settings map[string]any

// Changes is the subset of a Settings object modified by one update call
type Changes map[string]any

// Clone returns a shallow copy, safe to hand out as a point-in-time snapshot
func (s Settings) Clone() Settings {
	res := make(Settings, len(s))
	for k, v := range s {
		res[k] = v
	}
	return res
}

// Diff computes the change delta of partial against s. Fields whose proposed value
// strictly equals the current one are excluded.
func (s Settings) Diff(partial Settings) Changes {
	changes := Changes{}
	for k, v := range partial {
		cur, ok := s[k]
		if ok && Equal(cur, v) {
			continue
		}
		changes[k] = v
	}
	return changes
}

// Apply merges changes into s in place
func (s Settings) Apply(changes Changes) {
	for k, v := range changes {
		s[k] = v
	}
}

// String returns the value for key as a string, def if the key is absent or nil
func (s Settings) String(key, def string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return def
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprint(v)
}

// Bool returns the value for key as a bool. String values "true"/"false" are parsed,
// ints are true when non-zero, anything else yields def.
func (s Settings) Bool(key string, def bool) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		if b, ok := parseBool(v); ok {
			return b
		}
	case int:
		return v != 0
	}
	return def
}

// Int returns the value for key as an int, def if absent or not numeric
func (s Settings) Int(key string, def int) int {
	switch v := s[key].(type) {
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// Keys returns changed keys in sorted order
func (c Changes) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeValue converts a single raw value with no rule attached. String booleans
// ("True", "false") become bools, integer strings and integral floats become ints.
// Everything else is kept as is.
func NormalizeValue(v any) any {
	switch val := v.(type) {
	case string:
		if b, ok := parseBool(val); ok {
			return b
		}
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil && strings.TrimSpace(val) != "" {
			return n
		}
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < math.MaxInt32 {
			return int(val)
		}
		return val
	case int64:
		return int(val)
	case int32:
		return int(val)
	default:
		return v
	}
}

// Equal reports strict equality of two setting values: same type and same value
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func parseBool(s string) (value, ok bool) {
	switch s {
	case "True", "true", "TRUE":
		return true, true
	case "False", "false", "FALSE":
		return false, true
	}
	return false, false
}
