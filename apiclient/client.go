package apiclient

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

	"github.com/google/uuid"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/rs/zerolog/log"
)

const requestIDHeader = "X-Request-Id"

// Config describes one scoped client. A zero Scope builds the public client,
// which never carries a credential.
type Config struct {
	BaseURL string
	Scope   scope.Scope
	Tokens  TokenSource

	// Base is the underlying transport, http.DefaultTransport when nil
	Base http.RoundTripper
}

// Client issues requests against the backend for a single scope. Each call
// is one attempt: there is no retry, backoff or client-side timeout beyond
// what the caller's context imposes.
type Client struct {
	scope   scope.Scope
	baseURL *url.URL
	http    *http.Client
}

// Request is a single backend call. At most one of JSON and Form is used.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	JSON   any
	Form   *Form
	Header http.Header
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("[apiclient New] base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("[apiclient New] parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("[apiclient New] base URL %q must be absolute", cfg.BaseURL)
	}
	if cfg.Scope != "" && !cfg.Scope.Valid() {
		return nil, fmt.Errorf("[apiclient New] unknown scope %q", cfg.Scope)
	}

	return &Client{
		scope:   cfg.Scope,
		baseURL: base,
		http: &http.Client{
			Transport: &Transport{Scope: cfg.Scope, Tokens: cfg.Tokens, Base: cfg.Base},
		},
	}, nil
}

// Scope returns the client's scope, empty for the public client.
func (c *Client) Scope() scope.Scope {
	return c.scope
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, JSON: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, JSON: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}

func (c *Client) PostMultipart(ctx context.Context, path string, form *Form, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Form: form}, out)
}

// Do sends req and decodes a 2xx body into out when out is non-nil.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	httpReq, err := c.build(ctx, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.Path, ctxErr)
		}
		log.Debug().Err(err).Str("scope", c.scope.String()).Str("method", req.Method).Str("path", req.Path).Msg("Backend unreachable")
		return &ConnectivityError{Scope: c.scope, Method: req.Method, Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ConnectivityError{Scope: c.scope, Method: req.Method, Path: req.Path, Err: fmt.Errorf("read body: %w", err)}
	}

	log.Debug().
		Str("scope", c.scope.String()).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Str("request_id", httpReq.Header.Get(requestIDHeader)).
		Dur("elapsed", time.Since(start)).
		Msg("Backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Scope:  c.scope,
			Method: req.Method,
			Path:   req.Path,
			Status: resp.StatusCode,
			Detail: parseDetail(body),
		}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.Path, err)
	}
	return nil
}

func (c *Client) build(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		buf, ct, err := req.Form.encode()
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
		}
		body, contentType = buf, ct
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", method, req.Path, err)
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	if httpReq.Header.Get(requestIDHeader) == "" {
		httpReq.Header.Set(requestIDHeader, uuid.NewString())
	}
	return httpReq, nil
}
