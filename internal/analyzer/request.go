package analyzer

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/resumefit/internal/utils"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip"
	maxBodySize     = 4 << 20
)

var errBodyTooLarge = errors.New("response body too large")

// Request is the body sent to the analyzer.
type Request struct {
	Resume  string `json:"resume"`
	JobDesc string `json:"job_desc"`
}

// Analyze sends both documents and returns the raw response body. The body is
// not interpreted here; see package analysis.
func (c *Client) Analyze(ctx context.Context, resume, jobDesc string) ([]byte, error) {
	if !c.CanAnalyze(resume, jobDesc) {
		return nil, fmt.Errorf("%w: both documents need more than %d characters", ErrInputTooShort, c.MinLength)
	}

	payload, err := json.Marshal(Request{Resume: resume, JobDesc: jobDesc})
	if err != nil {
		return nil, fmt.Errorf("marshal analyzer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	req = c.setHeaders(req)

	c.logger.Debug("posting documents to analyzer",
		zap.Int("resume_length", utf8.RuneCountInString(resume)),
		zap.Int("job_desc_length", utf8.RuneCountInString(jobDesc)),
	)

	resp, err := c.request(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUnreachable, resp.StatusCode)
	}

	data, err := readBody(resp)
	if errors.Is(err, errBodyTooLarge) {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrUnreachable, maxBodySize)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrUnreachable, err)
	}

	c.logger.Debug("got analyzer response",
		zap.Int("status", resp.StatusCode),
		zap.Int("response_length", len(data)),
		zap.String("response_preview", utils.TruncateForLog(string(data), c.MaxLogLen)),
	)

	return data, nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)
	req.Header.Set("User-Agent", c.UserAgent)

	return req
}

func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	data, err := io.ReadAll(io.LimitReader(reader, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxBodySize {
		return nil, errBodyTooLarge
	}

	return data, nil
}
