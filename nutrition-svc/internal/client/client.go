// Package client is a small typed REST client for the menu and care-log
// services.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for any non-2xx answer from a backend.
type StatusError struct {
	Code    int
	URL     string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GET %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.Code, e.Message)
}

type Client struct {
	baseURL string
	http    HTTPClient
}

func New(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", target, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, URL: target, Message: errorMessage(body)}
	}
	if err := decodeBody(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}
	return nil
}

var envelopeKeys = map[string]bool{"data": true, "success": true, "message": true}

// decodeBody decodes body into out, unwrapping a {"data": ...} envelope
// when the object carries nothing besides the envelope fields.
func decodeBody(body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err == nil {
			if data, ok := fields["data"]; ok && onlyEnvelope(fields) {
				return json.Unmarshal(data, out)
			}
		}
	}
	return json.Unmarshal(trimmed, out)
}

func onlyEnvelope(fields map[string]json.RawMessage) bool {
	for key := range fields {
		if !envelopeKeys[key] {
			return false
		}
	}
	return true
}

func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}
