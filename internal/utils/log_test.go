package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "disabled preview", input: "Match score: 72", limit: 0, want: ""},
		{name: "short reply kept", input: "Match score: 72", limit: 50, want: "Match score: 72"},
		{name: "long reply cut", input: "Match score: 72. Strong Go background.", limit: 15, want: "Match score: 72..."},
		{name: "newlines flattened", input: "Skills:\n\n- Go\n- Kubernetes\r\n", limit: 50, want: "Skills: - Go - Kubernetes"},
		{name: "cut counts runes", input: "Résumé für Köln", limit: 6, want: "Résumé..."},
		{name: "blank input", input: " \n\t ", limit: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
