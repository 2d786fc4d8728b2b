package gemini

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/resumefit/internal/logger"
	"github.com/spigell/resumefit/internal/utils"
)

const (
	systemInstruction   = "You are an expert resume reviewer."
	defaultMaxLogLength = 200
)

//go:embed prompt.md
var promptTemplate string

var invisibleChars = strings.NewReplacer("\r", "", "\u200b", "")

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Matcher asks Gemini to review a resume against a job description.
type Matcher struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewMatcher(generator contentGenerator, maxLogLength int, log *zap.Logger) *Matcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Matcher{
		generator: generator,
		logger:    logger.WithModel(log, "gemini", generator.Model()),
		maxLogLen: maxLogLength,
	}
}

// Match returns the model's review. The text is passed through untouched
// apart from trimming; scores are extracted by the client.
func (m *Matcher) Match(ctx context.Context, resume, jobDesc string) (string, error) {
	resume = CleanText(resume)
	jobDesc = CleanText(jobDesc)

	if resume == "" {
		return "", errors.New("resume is required")
	}
	if jobDesc == "" {
		return "", errors.New("job description is required")
	}

	prompt := buildPrompt(resume, jobDesc)

	m.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, m.maxLogLen)),
	)

	raw, err := m.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return "", err
	}

	m.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, m.maxLogLen)),
	)

	return strings.TrimSpace(raw), nil
}

// CleanText drops carriage returns and zero-width spaces and trims the result.
func CleanText(s string) string {
	return strings.TrimSpace(invisibleChars.Replace(s))
}

func buildPrompt(resume, jobDesc string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume:\n{{RESUME}}\n\nJob Description:\n{{JOB_DESCRIPTION}}\n"
	}
	return strings.NewReplacer(
		"{{RESUME}}", resume,
		"{{JOB_DESCRIPTION}}", jobDesc,
	).Replace(template)
}
