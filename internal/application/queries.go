package application

import "github.com/bnema/iterrsa/internal/domain"

type ModelSummary struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Params      domain.Params `json:"params"`
	Worlds      []string      `json:"worlds"`
	Words       []string      `json:"words"`
	Utterances  []string      `json:"utterances"`
}

type ListenerResult struct {
	Model        string              `json:"model"`
	Depth        int                 `json:"depth"`
	Prefix       string              `json:"prefix"`
	Word         string              `json:"word"`
	Distribution domain.Distribution `json:"distribution"`
	World        string              `json:"world,omitempty"`
	Prob         *float64            `json:"prob,omitempty"`
}

type SpeakerResult struct {
	Model        string              `json:"model"`
	Depth        int                 `json:"depth"`
	Prefix       string              `json:"prefix"`
	World        string              `json:"world"`
	Distribution domain.Distribution `json:"distribution"`
	Word         string              `json:"word,omitempty"`
	Prob         *float64            `json:"prob,omitempty"`
}

type ScoreResult struct {
	Model     string  `json:"model"`
	Depth     int     `json:"depth"`
	World     string  `json:"world"`
	Utterance string  `json:"utterance"`
	Prob      float64 `json:"prob"`
}

// TableRow is one line of a listener or speaker table: the distribution for a
// single word (listener) or world (speaker).
type TableRow struct {
	Label        string              `json:"label"`
	Distribution domain.Distribution `json:"distribution"`
}

type TableKind string

const (
	TableListener TableKind = "listener"
	TableSpeaker  TableKind = "speaker"
)

type DistributionTable struct {
	Kind    TableKind  `json:"kind"`
	Model   string     `json:"model"`
	Depth   int        `json:"depth"`
	Prefix  string     `json:"prefix"`
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}
