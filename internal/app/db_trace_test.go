package app

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestFormatDBQueryForTrace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "  \n\t ", want: ""},
		{
			name: "whitespace collapsed",
			in:   "SELECT id, period\n\t FROM seasons\n WHERE id = $1",
			want: "SELECT id, period FROM seasons WHERE id = $1",
		},
		{
			name: "single row insert untouched",
			in:   "INSERT INTO seasons (period) VALUES ($1) RETURNING id",
			want: "INSERT INTO seasons (period) VALUES ($1) RETURNING id",
		},
		{
			name: "match links collapsed",
			in:   "INSERT INTO match_opposing_teams (match_id, opposing_team_id, position) VALUES ($1, $2, $3), ($4, $5, $6), ($7, $8, $9)",
			want: "INSERT INTO match_opposing_teams (match_id, opposing_team_id, position) VALUES ($1, $2, $3), ... (2 more rows)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, formatDBQueryForTrace(tt.in))
		})
	}
}

func TestFormatDBQueryForTrace_TruncatesOnRuneBoundary(t *testing.T) {
	// 9 ASCII bytes put the cut in the middle of a two-byte rune.
	query := "SELECT x'" + strings.Repeat("é", 300) + "'"

	got := formatDBQueryForTrace(query)

	require.True(t, utf8.ValidString(got))
	require.True(t, strings.HasSuffix(got, "..."))
	require.Equal(t, maxTracedQueryLength-1+len("..."), len(got))
}
