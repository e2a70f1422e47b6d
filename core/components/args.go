package components

import (
	"fmt"
	"strconv"
)

// Args is the flat argument bag passed to a component renderer.
type Args map[string]any

// String returns the value for key coerced to a string, or "" if absent.
func (a Args) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// StringOr returns the value for key, or fallback if absent or empty.
func (a Args) StringOr(key, fallback string) string {
	if s := a.String(key); s != "" {
		return s
	}
	return fallback
}

// Int returns the value for key coerced to an int, or 0.
func (a Args) Int(key string) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// Bool returns the value for key coerced to a bool, or false.
func (a Args) Bool(key string) bool {
	switch v := a[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// Strings returns the value for key as a string slice. Scalar values become
// a single-element slice; unsupported shapes return nil.
func (a Args) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Rows returns the value for key as table rows. A []string value is treated
// as a single-column table.
func (a Args) Rows(key string) [][]string {
	switch v := a[key].(type) {
	case [][]string:
		return v
	case []string:
		rows := make([][]string, 0, len(v))
		for _, cell := range v {
			rows = append(rows, []string{cell})
		}
		return rows
	case []any:
		rows := make([][]string, 0, len(v))
		for _, item := range v {
			switch row := item.(type) {
			case []string:
				rows = append(rows, row)
			case []any:
				cells := make([]string, 0, len(row))
				for _, cell := range row {
					cells = append(cells, fmt.Sprint(cell))
				}
				rows = append(rows, cells)
			default:
				rows = append(rows, []string{fmt.Sprint(item)})
			}
		}
		return rows
	default:
		return nil
	}
}

// Links returns the value for key as a list of label/url argument bags.
func (a Args) Links(key string) []Args {
	switch v := a[key].(type) {
	case []Args:
		return v
	case []map[string]any:
		out := make([]Args, 0, len(v))
		for _, m := range v {
			out = append(out, Args(m))
		}
		return out
	case []any:
		out := make([]Args, 0, len(v))
		for _, item := range v {
			switch m := item.(type) {
			case Args:
				out = append(out, m)
			case map[string]any:
				out = append(out, Args(m))
			}
		}
		return out
	default:
		return nil
	}
}

// Merge returns a new Args with over layered on top of base.
// Keys present in over win; neither input is modified.
func Merge(base, over Args) Args {
	merged := make(Args, len(base)+len(over))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}
