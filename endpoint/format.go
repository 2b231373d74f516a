package endpoint

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FormatSchema summarizes a schema in a single line
func FormatSchema(schema any) string {
	switch v := schema.(type) {
	case string:
		return v
	case []any:
		if len(v) == 0 {
			return "array"
		}
		switch v[0].(type) {
		case string:
			return "array of strings"
		case map[string]any:
			return "array of objects"
		}
		return "array"
	case map[string]any:
		if len(v) == 0 {
			return "object"
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]string, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, fmt.Sprintf("%v: %v", k, v[k]))
		}
		return "{ " + strings.Join(fields, ", ") + " }"
	}
	return "object"
}

// FormatExample renders example payload, lists and objects as indented json
func FormatExample(example any) string {
	switch v := example.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any, map[string]any:
		bin, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(bin)
	}
	return fmt.Sprint(example)
}
