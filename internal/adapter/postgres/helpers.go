package postgres

import "strings"

// ColumnList renders a column slice for a RETURNING clause.
func ColumnList(cols []string) string {
	return strings.Join(cols, ", ")
}

// PrefixColumns qualifies each column with a table alias for JOIN selects.
func PrefixColumns(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

// NullIfEmpty maps the empty string to NULL so that a pointer to "" clears a
// nullable column while nil leaves it untouched.
func NullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
