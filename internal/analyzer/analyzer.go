package analyzer

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/resumefit/internal/logger"
)

const (
	DefaultEndpoint  = "http://127.0.0.1:8000/match"
	DefaultMinLength = 40
	defaultTimeout   = 60 * time.Second
	defaultMaxLogLen = 200
	userAgent        = "spigell/resumefit"
)

// ErrUnreachable wraps every transport failure: connection errors and
// non-2xx responses alike.
var ErrUnreachable = errors.New("analyzer is unreachable")

// ErrInputTooShort is returned when a document is too short to analyze.
var ErrInputTooShort = errors.New("input is too short")

// Client posts documents to an analyzer endpoint.
type Client struct {
	Endpoint   string
	UserAgent  string
	HTTPClient *http.Client
	// MinLength is the minimum trimmed length of both documents.
	MinLength int
	MaxLogLen int
	logger    *zap.Logger
}

// Config holds the client settings.
type Config struct {
	Endpoint     string
	Timeout      time.Duration
	MinLength    int
	MaxLogLength int
}

func New(cfg Config, log *zap.Logger) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	minLength := cfg.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	maxLogLen := cfg.MaxLogLength
	if maxLogLen <= 0 {
		maxLogLen = defaultMaxLogLen
	}

	return &Client{
		Endpoint:  endpoint,
		UserAgent: userAgent,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		MinLength: minLength,
		MaxLogLen: maxLogLen,
		logger:    logger.WithAnalyzer(log, endpoint),
	}
}

// CanAnalyze reports whether both documents are long enough to be sent.
func (c *Client) CanAnalyze(resume, jobDesc string) bool {
	return len([]rune(strings.TrimSpace(resume))) > c.MinLength &&
		len([]rune(strings.TrimSpace(jobDesc))) > c.MinLength
}
