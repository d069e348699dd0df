package entities

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// EmployeeRecord is one row of the employees collection. The source enforces no
// schema, so fields are looked up by name with explicit presence checks.
type EmployeeRecord map[string]any

// Field returns the textual form of a present field. A field is present when it
// exists and holds a non-empty, non-zero, non-false value.
func (r EmployeeRecord) Field(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}

	switch val := v.(type) {
	case string:
		return val, val != ""
	case []byte:
		return string(val), len(val) > 0
	case bool:
		if !val {
			return "", false
		}
		return "true", true
	case int:
		return strconv.Itoa(val), val != 0
	case int32:
		return strconv.FormatInt(int64(val), 10), val != 0
	case int64:
		return strconv.FormatInt(val, 10), val != 0
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), val != 0
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), val != 0
	case json.Number:
		f, err := val.Float64()
		return val.String(), err != nil || f != 0
	default:
		if rv := reflect.ValueOf(val); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		s := fmt.Sprint(val)
		return s, s != ""
	}
}

// Columns returns the sorted field names of the record.
func (r EmployeeRecord) Columns() []string {
	cols := make([]string, 0, len(r))
	for k := range r {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// DisplayRow is the fully resolved form of one employee used by a rendered
// table row. Every field holds data or a placeholder; Email is nil when absent.
type DisplayRow struct {
	DisplayName string  `json:"display_name"`
	Initial     string  `json:"initial"`
	Position    string  `json:"position"`
	Department  string  `json:"department"`
	Email       *string `json:"email"`
}

// Placeholders shown when a record lacks a field.
const (
	UnknownName        = "Unknown"
	UnknownInitial     = "?"
	MissingPlaceholder = "-"
)
