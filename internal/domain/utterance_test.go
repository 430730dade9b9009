package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Utterance
	}{
		{name: "empty becomes start marker", raw: "", want: Utterance{"<s>"}},
		{name: "missing start marker is prepended", raw: "some but", want: Utterance{"<s>", "some", "but"}},
		{name: "existing start marker is kept", raw: "<s> some", want: Utterance{"<s>", "some"}},
		{name: "extra whitespace is ignored", raw: "  <s>\tsome  ", want: Utterance{"<s>", "some"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrefix(tt.raw))
		})
	}
}

func TestParseComplete(t *testing.T) {
	assert.Equal(t, "<s> some </s>", ParseComplete("some").String())
	assert.Equal(t, "<s> some </s>", ParseComplete("<s> some").String())
	assert.Equal(t, "<s> some </s>", ParseComplete("some </s>").String())
	assert.Equal(t, "<s> some </s>", ParseComplete("<s> some </s>").String())
	assert.True(t, ParseComplete("all").Complete())
	assert.False(t, ParsePrefix("all").Complete())
}

func TestUtteranceHasPrefixMatchesTokens(t *testing.T) {
	u := ParseComplete("some but not all")

	assert.True(t, u.HasPrefix(ParsePrefix("")))
	assert.True(t, u.HasPrefix(ParsePrefix("some but")))
	assert.True(t, u.HasPrefix(u))
	assert.False(t, u.HasPrefix(ParsePrefix("so")))
	assert.False(t, u.HasPrefix(u.Extend("more")))
}

func TestUtteranceExtendDoesNotAlias(t *testing.T) {
	base := make(Utterance, 1, 8)
	base[0] = StartMarker

	a := base.Extend("some")
	b := base.Extend("all")

	assert.Equal(t, "<s> some", a.String())
	assert.Equal(t, "<s> all", b.String())
}

func TestUtteranceWords(t *testing.T) {
	assert.Equal(t, []string{"not", "mary"}, ParseComplete("not mary").Words())
	assert.Empty(t, ParseComplete("").Words())
}
