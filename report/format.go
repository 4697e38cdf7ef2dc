// Package report turns a parsed SPDX document into the ordered block
// sequence of a printable report.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders any JSON-typed value as display text for a table
// cell. It is total: every value maps to some string, never an error.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "N/A"
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case []any:
		if len(val) == 0 {
			return "None"
		}
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = scalarString(item)
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		// Fallback for unexpected structured values.
		out, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(out)
	default:
		return scalarString(val)
	}
}

// scalarString renders a list element. Elements keep their plain string
// form: nulls print as "None" and booleans as "True"/"False"; the
// Yes/No/N-A readings apply to whole field values only.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers arrive as float64; print integers without a fraction.
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case nil:
		return "None"
	default:
		return fmt.Sprintf("%v", val)
	}
}
