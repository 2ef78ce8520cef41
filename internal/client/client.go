package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "joydairy-client/1"

	maxErrorBodyBytes = 64 << 10
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Token     string
	UserAgent string
	// HTTPClient overrides the transport; Timeout still applies per request.
	HTTPClient *http.Client
}

type Client struct {
	baseURL   *url.URL
	timeout   time.Duration
	token     string
	userAgent string
	http      *http.Client
}

func New(cfg Config) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must use http or https", cfg.BaseURL)
	}
	if baseURL.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:   baseURL,
		timeout:   timeout,
		token:     cfg.Token,
		userAgent: userAgent,
		http:      httpClient,
	}, nil
}

// WithToken returns a copy that authenticates with token.
func (client *Client) WithToken(token string) *Client {
	clone := *client
	clone.token = token
	return &clone
}

func (client *Client) Token() string {
	return client.token
}

func (client *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	target := client.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", client.userAgent)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.token != "" {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}

	response, err := client.http.Do(request)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(response)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return &NetworkError{Op: method + " " + path, Err: err}
		}
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(response *http.Response) error {
	apiErr := &APIError{
		Status: response.StatusCode,
		Kind:   kindForStatus(response.StatusCode),
	}

	payload := struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}{}
	raw, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
	if err := json.Unmarshal(raw, &payload); err == nil {
		apiErr.Message = payload.Error
		apiErr.Field = payload.Field
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(response.StatusCode)
	}
	return apiErr
}
