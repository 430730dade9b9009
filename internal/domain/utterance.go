package domain

import "strings"

const (
	StartMarker = "<s>"
	EndMarker   = "</s>"
)

// Utterance is a sequence of word tokens. Complete utterances are bounded by
// StartMarker and EndMarker; prefixes only carry the start marker.
type Utterance []string

func ParseUtterance(raw string) Utterance {
	return Utterance(strings.Fields(raw))
}

// ParsePrefix parses raw and prepends the start marker when missing. An empty
// string yields the bare start marker.
func ParsePrefix(raw string) Utterance {
	return ParseUtterance(raw).WithStart()
}

// ParseComplete parses raw and adds whichever markers are missing.
func ParseComplete(raw string) Utterance {
	return ParseUtterance(raw).Wrap()
}

func (u Utterance) String() string {
	return strings.Join(u, " ")
}

func (u Utterance) WithStart() Utterance {
	if len(u) > 0 && u[0] == StartMarker {
		return u.clone()
	}

	out := make(Utterance, 0, len(u)+1)
	out = append(out, StartMarker)
	return append(out, u...)
}

func (u Utterance) Wrap() Utterance {
	out := u.WithStart()
	if out[len(out)-1] != EndMarker {
		out = append(out, EndMarker)
	}
	return out
}

func (u Utterance) Extend(word string) Utterance {
	out := make(Utterance, 0, len(u)+1)
	out = append(out, u...)
	return append(out, word)
}

func (u Utterance) HasPrefix(prefix Utterance) bool {
	if len(prefix) > len(u) {
		return false
	}
	for i := range prefix {
		if u[i] != prefix[i] {
			return false
		}
	}
	return true
}

func (u Utterance) Complete() bool {
	return len(u) >= 2 && u[0] == StartMarker && u[len(u)-1] == EndMarker
}

// Words returns the tokens between the markers.
func (u Utterance) Words() []string {
	words := make([]string, 0, len(u))
	for _, token := range u {
		if token == StartMarker || token == EndMarker {
			continue
		}
		words = append(words, token)
	}
	return words
}

func (u Utterance) clone() Utterance {
	out := make(Utterance, len(u))
	copy(out, u)
	return out
}
