package application

import "github.com/bnema/iterrsa/internal/domain"

// ParamOverrides replaces a stored model's parameters for one query. Zero
// values keep the stored value.
type ParamOverrides struct {
	Alpha   float64
	Epsilon float64
}

func (o ParamOverrides) apply(params domain.Params) domain.Params {
	if o.Alpha != 0 {
		params.Alpha = o.Alpha
	}
	if o.Epsilon != 0 {
		params.Epsilon = o.Epsilon
	}
	return params
}

type ListenerQuery struct {
	Model     string
	Depth     int
	Prefix    string
	Word      string
	World     string
	Overrides ParamOverrides
}

type SpeakerQuery struct {
	Model     string
	Depth     int
	Prefix    string
	World     string
	Word      string
	Overrides ParamOverrides
}

type SpeakQuery struct {
	Model     string
	Depth     int
	World     string
	Overrides ParamOverrides
}

type ScoreQuery struct {
	Model     string
	Depth     int
	World     string
	Utterance string
	Overrides ParamOverrides
}

type ListenQuery struct {
	Model     string
	Depth     int
	Utterance string
	Overrides ParamOverrides
}

type TableQuery struct {
	Model     string
	Depth     int
	Prefix    string
	Overrides ParamOverrides
}
