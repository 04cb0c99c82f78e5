package app

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// Second and later tuples of a multi-row VALUES list.
	queryValueRowsRegex = regexp.MustCompile(`(VALUES \([^()]*\))((?:, \([^()]*\))+)`)
)

// formatDBQueryForTrace renders a statement for the db.statement attribute.
// Bulk inserts (match links, bootstrap seed) keep their first row and a count.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(queryWhitespaceRegex.ReplaceAllString(query, " "))
	if query == "" {
		return query
	}

	query = queryValueRowsRegex.ReplaceAllStringFunc(query, func(match string) string {
		parts := queryValueRowsRegex.FindStringSubmatch(match)
		extra := strings.Count(parts[2], "), (") + 1
		return parts[1] + ", ... (" + strconv.Itoa(extra) + " more rows)"
	})
	if len(query) <= maxTracedQueryLength {
		return query
	}

	// Seed literals carry accented names; never split a rune.
	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(query[cut]) {
		cut--
	}
	return query[:cut] + "..."
}
