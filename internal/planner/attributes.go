package planner

import (
	"fmt"
	"maps"
	"strconv"
)

// Attributes are caller-supplied tag attributes. Values may be strings,
// booleans, numbers or nil.
type Attributes map[string]any

var (
	scriptFlags     = []string{"async", "defer", "nomodule"}
	styleSheetFlags = []string{"disabled"}
)

// ScriptAttributes normalizes attributes for a module script tag. type=module
// is set first so callers can still override it.
func ScriptAttributes(attrs Attributes) map[string]string {
	out := map[string]string{"type": "module"}
	maps.Copy(out, normalize(attrs, scriptFlags))
	return out
}

// StyleSheetAttributes normalizes attributes for a stylesheet
func StyleSheetAttributes(attrs Attributes) map[string]string {
	return normalize(attrs, styleSheetFlags)
}

// normalize renders every value as a string. Flag attributes become their
// own name when truthy; other true values render as the attribute name too.
// Falsy flags, false and nil drop the attribute.
func normalize(attrs Attributes, flags []string) map[string]string {
	out := make(map[string]string, len(attrs))
	for name, value := range attrs {
		if isFlag(name, flags) {
			if truthy(value) {
				out[name] = name
			}
			continue
		}

		switch v := value.(type) {
		case nil:
		case bool:
			if v {
				out[name] = name
			}
		default:
			out[name] = stringify(v)
		}
	}
	return out
}

func isFlag(name string, flags []string) bool {
	for _, f := range flags {
		if f == name {
			return true
		}
	}
	return false
}

// truthy follows template conventions: "", "0", zero numbers, false and nil
// are false
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
