// Package khetapi is the single outbound path to the Khet Connect REST API.
// Every page goes through it; nothing else in the panel touches the transport,
// so the bearer header is attached in exactly one place.
package khetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: log,
	}
}

// envelope is the uniform reply shape of the remote API.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues one request. Mutating calls carry their fields as multipart form
// data, list calls carry no body. With requiresAuth set, a missing token fails
// fast with ErrUnauthenticated before any bytes leave the process.
func (c *Client) do(ctx context.Context, method, path string, form url.Values, token string, requiresAuth bool) (json.RawMessage, error) {
	if requiresAuth && token == "" {
		return nil, ErrUnauthenticated
	}

	var body io.Reader
	contentType := ""
	if form != nil {
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for key, vals := range form {
			for _, v := range vals {
				if err := w.WriteField(key, v); err != nil {
					return nil, fmt.Errorf("encode form: %w", err)
				}
			}
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("encode form: %w", err)
		}
		body = buf
		contentType = w.FormDataContentType()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if requiresAuth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &HTTPError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, &MalformedResponseError{Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.log.Warn("api request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return nil, &HTTPError{Status: resp.StatusCode, Message: msg}
	}

	return env.Data, nil
}
