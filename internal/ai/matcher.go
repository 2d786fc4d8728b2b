package ai

import "context"

// Matcher reviews a resume against a job description and returns the
// reviewer's narrative, which is expected to mention a 0-100 match score.
type Matcher interface {
	Match(ctx context.Context, resume, jobDesc string) (string, error)
}
