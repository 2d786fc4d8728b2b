package analysis

import (
	"math"
	"testing"
)

func intPtr(v int) *int { return &v }

func equalScore(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatScore(s *int) any {
	if s == nil {
		return nil
	}
	return *s
}

func TestNormalizeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantText  string
		wantScore *int
	}{
		{
			name:     "string payload without score mention",
			body:     `"some text"`,
			wantText: "some text",
		},
		{
			name:      "string payload with inferable score",
			body:      `"Overall you are a 64% fit."`,
			wantText:  "Overall you are a 64% fit.",
			wantScore: intPtr(64),
		},
		{
			name:      "analysis and score override result",
			body:      `{"result": "A", "analysis": "B", "score": 50}`,
			wantText:  "B",
			wantScore: intPtr(50),
		},
		{
			name:      "percent inferred from result text",
			body:      `{"result": "You are an 87% match for this role."}`,
			wantText:  "You are an 87% match for this role.",
			wantScore: intPtr(87),
		},
		{
			name:      "phrase inferred from result text",
			body:      `{"result": "Match score: 72. Great fit."}`,
			wantText:  "Match score: 72. Great fit.",
			wantScore: intPtr(72),
		},
		{
			name:      "numeric result is a score",
			body:      `{"result": 66}`,
			wantScore: intPtr(66),
		},
		{
			name:      "numeric result with analysis text",
			body:      `{"result": 66, "analysis": "Solid backend match, 90% of keywords present."}`,
			wantText:  "Solid backend match, 90% of keywords present.",
			wantScore: intPtr(66),
		},
		{
			name:      "score field overrides numeric result",
			body:      `{"result": 66, "score": 12}`,
			wantScore: intPtr(12),
		},
		{
			name:      "explicit score wins over inference",
			body:      `{"result": "no numeric mention here", "score": 10}`,
			wantText:  "no numeric mention here",
			wantScore: intPtr(10),
		},
		{
			name:      "explicit score wins even when text has a percentage",
			body:      `{"analysis": "about 95% aligned", "score": 40}`,
			wantText:  "about 95% aligned",
			wantScore: intPtr(40),
		},
		{
			name:      "explicit score is clamped high",
			body:      `{"score": 150}`,
			wantScore: intPtr(100),
		},
		{
			name:      "explicit score is clamped low",
			body:      `{"score": -5}`,
			wantScore: intPtr(0),
		},
		{
			name:      "fractional score is rounded",
			body:      `{"score": 72.5}`,
			wantScore: intPtr(73),
		},
		{
			name:      "inferred score is clamped",
			body:      `{"result": "A 250% improvement is needed"}`,
			wantText:  "A 250% improvement is needed",
			wantScore: intPtr(100),
		},
		{
			name: "overflowing score is dropped",
			body: `{"score": 1e400}`,
		},
		{
			name:     "empty analysis overwrites result text",
			body:     `{"result": "Match score: 80", "analysis": ""}`,
			wantText: "",
		},
		{
			name:     "string score is not a number",
			body:     `{"analysis": "fine", "score": "88"}`,
			wantText: "fine",
		},
		{
			name:     "non-string analysis is ignored",
			body:     `{"result": "kept", "analysis": 5}`,
			wantText: "kept",
		},
		{
			name:     "field names are case-sensitive",
			body:     `{"Result": "ignored", "Score": 50, "analysis": "used"}`,
			wantText: "used",
		},
		{
			name:      "unknown fields are ignored",
			body:      `{"verdict": "strong", "score": 91, "suggestions": ["a", "b"]}`,
			wantScore: intPtr(91),
		},
		{name: "empty object", body: `{}`},
		{name: "number payload", body: `42`},
		{name: "boolean payload", body: `true`},
		{name: "array payload", body: `["Match score: 50"]`},
		{name: "null payload", body: `null`},
		{name: "null fields", body: `{"result": null, "analysis": null, "score": null}`},
		{name: "invalid json", body: `{"result": `},
		{name: "trailing garbage", body: `{"score": 50} {"score": 60}`},
		{name: "trailing closing brace", body: `{"score": 50}}`},
		{name: "trailing closing bracket", body: `{"score": 50}]`},
		{name: "string with trailing bracket", body: `"x"]`},
		{name: "scored string with trailing bracket", body: `"Match score: 70"]`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeJSON([]byte(tt.body))
			if got.Text != tt.wantText {
				t.Fatalf("expected text %q, got %q", tt.wantText, got.Text)
			}
			if !equalScore(got.Score, tt.wantScore) {
				t.Fatalf("expected score %v, got %v", formatScore(tt.wantScore), formatScore(got.Score))
			}
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	got := NormalizeValue(map[string]any{"result": "x", "score": int64(33)})
	if got.Text != "x" || !equalScore(got.Score, intPtr(33)) {
		t.Fatalf("unexpected result: %+v", got)
	}

	got = NormalizeValue(42)
	if got.Text != "" || got.Score != nil {
		t.Fatalf("expected empty result for number payload, got %+v", got)
	}

	got = NormalizeValue(nil)
	if got.Text != "" || got.Score != nil {
		t.Fatalf("expected empty result for nil payload, got %+v", got)
	}
}

func TestNormalizeNaNScoreSkipsInference(t *testing.T) {
	t.Parallel()

	text := "Match score: 70"
	nan := math.NaN()

	got := Normalize(ObjectPayload{Analysis: &text, Score: &nan})
	if got.Score != nil {
		t.Fatalf("expected nil score for NaN input, got %d", *got.Score)
	}
	if got.Text != text {
		t.Fatalf("unexpected text: %q", got.Text)
	}
}

func TestNormalizeRangeInvariant(t *testing.T) {
	t.Parallel()

	values := []float64{-1e9, -100, -0.4, 0, 0.5, 49.49, 99.5, 100, 100.2, 1e9, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, v := range values {
		v := v
		got := Normalize(ObjectPayload{Score: &v})
		if got.Score == nil {
			continue
		}
		if *got.Score < MinScore || *got.Score > MaxScore {
			t.Fatalf("score %d for input %v is out of range", *got.Score, v)
		}
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	t.Parallel()

	body := []byte(`{"result": "75% culture fit, 60% skills match"}`)
	first := NormalizeJSON(body)
	for i := 0; i < 10; i++ {
		again := NormalizeJSON(body)
		if again.Text != first.Text || !equalScore(again.Score, first.Score) {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
	if !equalScore(first.Score, intPtr(75)) {
		t.Fatalf("expected leftmost score 75, got %v", formatScore(first.Score))
	}
}

func TestResultHasContent(t *testing.T) {
	t.Parallel()

	if (Result{}).HasContent() {
		t.Fatal("expected empty result to have no content")
	}
	if !(Result{Score: intPtr(0)}).HasContent() {
		t.Fatal("expected zero score to count as content")
	}
	if !(Result{Text: "x"}).HasContent() {
		t.Fatal("expected text to count as content")
	}
}
