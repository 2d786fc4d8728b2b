// Package analysis turns loosely shaped analyzer responses into a fixed
// Result: a narrative text and an optional match score in [0, 100].
//
// Every function here is pure and safe for concurrent use.
package analysis

import "math"

// Result is the normalized analyzer response.
type Result struct {
	Text  string `json:"text"`
	Score *int   `json:"score"`
}

// HasContent reports whether there is anything worth showing.
func (r Result) HasContent() bool {
	return r.Score != nil || r.Text != ""
}

// NormalizeJSON normalizes a raw response body.
func NormalizeJSON(raw []byte) Result {
	return Normalize(Decode(raw))
}

// NormalizeValue normalizes an already decoded JSON value.
func NormalizeValue(v any) Result {
	return Normalize(DecodeValue(v))
}

// Normalize resolves text and score from p. The analysis and score fields
// take precedence over result; a score is inferred from the text only when
// no numeric field was supplied.
func Normalize(p Payload) Result {
	var (
		text  string
		score *float64
	)

	switch payload := p.(type) {
	case TextPayload:
		text = string(payload)
	case ObjectPayload:
		if payload.ResultText != nil {
			text = *payload.ResultText
		} else if payload.ResultScore != nil {
			score = ptr(*payload.ResultScore)
		}

		if payload.Analysis != nil {
			text = *payload.Analysis
		}

		if payload.Score != nil {
			score = ptr(*payload.Score)
		}
	}

	if score == nil && text != "" {
		if inferred := InferScore(text); inferred != nil {
			score = ptr(float64(*inferred))
		}
	}

	return Result{Text: text, Score: roundScore(Clamp(score))}
}

func roundScore(v *float64) *int {
	if v == nil {
		return nil
	}

	n := int(math.Round(*v))
	return &n
}

func ptr[T any](v T) *T {
	return &v
}
