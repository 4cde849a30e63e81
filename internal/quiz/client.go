// Package quiz is a client for the quiz service, which serves interview
// problems and grades written answers.
package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client provides access to the quiz service API.
type Client interface {
	ListProblems(ctx context.Context, params ListParams) (*ListResponse, error)
	GetProblem(ctx context.Context, id int) (*Problem, error)
	ListTopics(ctx context.Context) ([]string, error)
	Grade(ctx context.Context, problemID int, answer string) (*GradeResponse, error)
	Smoke(ctx context.Context) (*SmokeResponse, error)
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for cfg.BaseURL. Requests carry HTTP Basic auth
// with cfg.Password; the server ignores the username.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) ListProblems(ctx context.Context, params ListParams) (*ListResponse, error) {
	q := url.Values{}
	if params.Q != "" {
		q.Set("q", params.Q)
	}
	if params.Difficulty != "" {
		q.Set("difficulty", params.Difficulty)
	}
	if params.Topic != "" {
		q.Set("topic", params.Topic)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/problems"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var resp ListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *httpClient) GetProblem(ctx context.Context, id int) (*Problem, error) {
	var resp Problem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/problems/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *httpClient) ListTopics(ctx context.Context) ([]string, error) {
	var resp []string
	if err := c.do(ctx, http.MethodGet, "/api/topics", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *httpClient) Grade(ctx context.Context, problemID int, answer string) (*GradeResponse, error) {
	var resp GradeResponse
	body := GradeRequest{ProblemID: problemID, Answer: answer}
	if err := c.do(ctx, http.MethodPost, "/api/grade", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *httpClient) Smoke(ctx context.Context) (*SmokeResponse, error) {
	var resp SmokeResponse
	if err := c.do(ctx, http.MethodGet, "/api/smoke", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one request; there is no retry. The outcome is reported to
// the observer.
func (c *httpClient) do(ctx context.Context, method, path string, in, out any) error {
	if !c.cfg.Enabled() {
		return ErrNotConfigured
	}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	status, err := c.roundTrip(ctx, method, path, in, out)
	if err != nil && ctx.Err() != nil {
		err = ErrTimeout
	} else if isConnectionError(err) {
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.observer.OnCallComplete(CallEvent{
		Method:     method,
		Path:       strings.SplitN(path, "?", 2)[0],
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})
	return err
}

func (c *httpClient) roundTrip(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.cfg.BaseURL, "/")+path, body)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Password != "" {
		req.SetBasicAuth("leettomato", c.cfg.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return resp.StatusCode, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	case errors.As(err, &apiErr):
		return "HTTP_" + strconv.Itoa(apiErr.StatusCode)
	default:
		return "UNKNOWN"
	}
}
