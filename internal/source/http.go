package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

const maxDefinitionBytes = 4 << 20

// HTTPOptions tunes the retrying client.
type HTTPOptions struct {
	RetryMax     int
	Timeout      time.Duration
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// HTTP fetches ids that are http:// or https:// URLs.
type HTTP struct {
	client *retryablehttp.Client
}

// NewHTTP builds a source backed by go-retryablehttp.
func NewHTTP(opts HTTPOptions, log *logrus.Entry) *HTTP {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.RetryMax
	if opts.Timeout > 0 {
		client.HTTPClient.Timeout = opts.Timeout
	}
	if opts.RetryWaitMin > 0 {
		client.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		client.RetryWaitMax = opts.RetryWaitMax
	}
	client.Logger = retryLogger{log: log}
	return &HTTP{client: client}
}

func isURL(careerID string) bool {
	return strings.HasPrefix(careerID, "http://") || strings.HasPrefix(careerID, "https://")
}

func (h *HTTP) Fetch(ctx context.Context, careerID string) ([]byte, error) {
	if !isURL(careerID) {
		return nil, fmt.Errorf("career %q: %w", careerID, ErrUnknownCareer)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, careerID, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", careerID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", careerID, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDefinitionBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", careerID, err)
	}
	return data, nil
}

// retryLogger adapts logrus to retryablehttp.LeveledLogger. Retry chatter
// is debug-level.
type retryLogger struct {
	log *logrus.Entry
}

func (l retryLogger) entry(kv []interface{}) *logrus.Entry {
	e := l.log
	if e == nil {
		e = logrus.NewEntry(logrus.StandardLogger())
	}
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return e.WithFields(fields)
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.entry(kv).Warn(msg) }
func (l retryLogger) Info(msg string, kv ...interface{})  { l.entry(kv).Debug(msg) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.entry(kv).Debug(msg) }
func (l retryLogger) Warn(msg string, kv ...interface{})  { l.entry(kv).Debug(msg) }

var _ retryablehttp.LeveledLogger = retryLogger{}
