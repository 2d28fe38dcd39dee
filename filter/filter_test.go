package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var matchCases = []struct {
	name  string
	query string
	text  string
	want  bool
}{
	{"all words present", "foo bar", "a foobar string", true},
	{"one word missing", "foo baz", "a foobar string", false},
	{"empty query", "", "anything", true},
	{"blank query", "   ", "anything", true},
	{"empty query and text", "", "", true},
	{"word against empty text", "foo", "", false},
	{"case insensitive query", "FOO", "a foobar string", true},
	{"case insensitive text", "garden", "The GARDEN room", true},
	{"extra spaces between words", "foo    bar", "bar and foo", true},
	{"tabs and newlines split words", "foo\tbar\n", "foobar", true},
	{"repeated word", "foo foo", "foo", true},
	{"overlapping words", "foobar bar", "xfoobarx", true},
	{"word is suffix of another", "oobar foobar", "foobar", true},
	{"unicode", "été", "Un ÉTÉ avec un badger", true},
	{"substring not word boundary", "oba", "foobar", true},
	{"prefix and suffix words in one place", "a ab abc", "zabcz", true},
	{"suffix word", "b ab", "zabz", true},
	{"nested word missing", "ab abd", "zabcz", false},
	{"emoji", "😀", "good morning 😀", true},
	{"cjk overlapping words", "日本 本語", "日本語", true},
	{"cjk word missing", "日本 英語", "日本語", false},
	{"sharp s folds to ss", "strasse", "Hauptstraße 1", true},
	{"ss folds like sharp s", "STRAßE", "strasse", true},
}

func TestMatches(t *testing.T) {
	for _, tt := range matchCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Matches(tt.query, tt.text))
		})
	}
}

func TestMatcher_AgreesWithMatches(t *testing.T) {
	for _, tt := range matchCases {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			m, err := Compile(tt.query)
			req.NoError(err)
			req.Equal(tt.want, m.Match(tt.text))
		})
	}
}

func TestMatcher_Reuse(t *testing.T) {
	req := require.New(t)
	m, err := Compile("tea room")
	req.NoError(err)

	req.True(m.Match("The tea room"))
	req.False(m.Match("The coffee room"))
	req.True(m.Match("ROOM for TEA"))
}

func TestItems(t *testing.T) {
	req := require.New(t)
	type room struct{ name string }
	rooms := []room{{"Tea Garden"}, {"Coffee House"}, {"Garden Party"}, {"tea & coffee"}}
	name := func(r room) string { return r.name }

	req.Equal([]room{{"Tea Garden"}, {"Garden Party"}}, Items("garden", rooms, name))
	req.Equal([]room{{"tea & coffee"}}, Items("COFFEE tea", rooms, name))
	req.Equal(rooms, Items("", rooms, name))
	req.Empty(Items("nothing", rooms, name))
}
