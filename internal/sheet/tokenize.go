// Package sheet maps between spreadsheet rows and domain records.
// It tokenizes CSV exports, normalizes positional rows into typed records
// using an explicit column schema per record kind, and serializes parsed
// confirmations back into rows and CSV blocks.
// Nothing here does I/O. Normalization never fails: the sheet is hand-edited
// and every field has a defined fallback.
package sheet

import "strings"

// Tokenize splits CSV text into rows of trimmed cells.
//
// A double quote toggles a quoted region in which commas do not split; the
// quote itself is never emitted and there is no escape for a literal quote.
// Rows whose cells are all empty are dropped.
func Tokenize(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		row := tokenizeLine(line)
		if !blank(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func tokenizeLine(line string) []string {
	var (
		cells    []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(cells, strings.TrimSpace(current.String()))
}

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
