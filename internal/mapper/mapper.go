// Package mapper converts employee records into presentation models.
package mapper

import (
	"strings"
	"unicode/utf8"

	"employee-directory/internal/entities"
)

// ToDisplayRow resolves a loosely-typed record into a fully populated row.
// It never fails: each field resolves to data or a placeholder.
func ToDisplayRow(rec entities.EmployeeRecord) entities.DisplayRow {
	row := entities.DisplayRow{
		DisplayName: displayName(rec),
		Initial:     initial(rec),
		Position:    firstOf(rec, entities.MissingPlaceholder, "position", "title"),
		Department:  firstOf(rec, entities.MissingPlaceholder, "department"),
	}
	if email, ok := rec.Field("email"); ok {
		row.Email = &email
	}
	return row
}

// ToDisplayRows maps records preserving their order.
func ToDisplayRows(list []entities.EmployeeRecord) []entities.DisplayRow {
	res := make([]entities.DisplayRow, 0, len(list))
	for _, rec := range list {
		res = append(res, ToDisplayRow(rec))
	}
	return res
}

func displayName(rec entities.EmployeeRecord) string {
	if v, ok := rec.Field("full_name"); ok {
		return v
	}
	if v, ok := rec.Field("name"); ok {
		return v
	}

	first, _ := rec.Field("first_name")
	last, _ := rec.Field("last_name")
	if joined := strings.TrimSpace(first + " " + last); joined != "" {
		return joined
	}
	return entities.UnknownName
}

// initial is taken from the first present name source, independent of which
// one won displayName.
func initial(rec entities.EmployeeRecord) string {
	for _, field := range []string{"full_name", "name", "first_name"} {
		if v, ok := rec.Field(field); ok {
			r, _ := utf8.DecodeRuneInString(v)
			return string(r)
		}
	}
	return entities.UnknownInitial
}

func firstOf(rec entities.EmployeeRecord, fallback string, fields ...string) string {
	for _, f := range fields {
		if v, ok := rec.Field(f); ok {
			return v
		}
	}
	return fallback
}
