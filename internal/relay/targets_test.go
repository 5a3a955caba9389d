package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTargets(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "no keyword anywhere",
			text: "a plain description\nwith #channel and @user tokens",
			want: nil,
		},
		{
			name: "single line with all sigils",
			text: "notify &general #team-alpha @john",
			want: []string{"&general", "#team-alpha", "@john"},
		},
		{
			name: "keyword without tokens",
			text: "please notify the team",
			want: nil,
		},
		{
			name: "uppercase keyword keeps token case",
			text: "NOTIFY &Ops",
			want: []string{"&Ops"},
		},
		{
			name: "notification keyword",
			text: "notification targets: #releases",
			want: []string{"#releases"},
		},
		{
			name: "keyword embedded in a word",
			text: "renotify &escalations",
			want: []string{"&escalations"},
		},
		{
			name: "tokens in line order top to bottom",
			text: "Ship checklist\nnotify #alpha\nnotify &beta @carol",
			want: []string{"#alpha", "&beta", "@carol"},
		},
		{
			name: "duplicates across lines dropped",
			text: "notify &dup #one\nnotify &dup #two",
			want: []string{"&dup", "#one", "#two"},
		},
		{
			name: "dedup is case sensitive",
			text: "notify &General\nnotify &general",
			want: []string{"&General", "&general"},
		},
		{
			name: "hyphens and underscores in names",
			text: "notify #team-alpha @a_user",
			want: []string{"#team-alpha", "@a_user"},
		},
		{
			name: "tokens only read from keyword lines",
			text: "see #context for details\nnotify @dave",
			want: []string{"@dave"},
		},
		{
			name: "token wrapped in punctuation",
			text: "notify (&general), then close",
			want: []string{"&general"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTargets(tt.text))
		})
	}
}
