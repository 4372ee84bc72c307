// Copyright (c) 2026, The StatusKit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/statuskit/statuskit/pkg/defaults"
	skerrors "github.com/statuskit/statuskit/pkg/errors"
	"github.com/statuskit/statuskit/pkg/server"
	"github.com/statuskit/statuskit/pkg/sink"
	"github.com/statuskit/statuskit/pkg/status"
)

// userAgent identifies skctl requests in daemon logs.
const userAgent = "statuskit-skctl/1.0"

// acceptHeader pins the API version the client understands.
const acceptHeader = "application/vnd.statuskit.v1+json"

// Client fetches rendered documents and provider listings from a running
// statuskitd.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client; used by tests and by
// callers that need custom transport behavior.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithInsecureTLS skips TLS certificate verification.
func WithInsecureTLS(insecure bool) ClientOption {
	return func(c *Client) {
		tr, ok := c.http.Transport.(*http.Transport)
		if !ok || tr == nil {
			return
		}
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		tr.TLSClientConfig.InsecureSkipVerify = insecure //nolint:gosec
	}
}

// NewClient creates a client for the daemon at serverURL. The URL must be
// absolute http or https.
func NewClient(serverURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(serverURL, "/"))
	if err != nil {
		return nil, skerrors.Wrap(skerrors.ErrCodeInvalidRequest, "invalid server URL", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, skerrors.NewWithContext(skerrors.ErrCodeInvalidRequest,
			"server URL must be absolute http or https", map[string]any{
				"server": serverURL,
			})
	}

	c := &Client{
		baseURL: u.String(),
		http: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newClientTransport(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func newClientTransport() *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// FetchDocument retrieves the rendered status document for the mode,
// restricted to one provider when label is non-empty. Flat captures come
// back as text documents, archive captures as zip bundles.
func (c *Client) FetchDocument(ctx context.Context, mode status.Mode, label string) (*sink.Document, error) {
	path, err := documentPath(mode, label)
	if err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, defaults.CaptureTimeout)
	defer cancel()

	resp, err := c.get(fetchCtx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, skerrors.Wrap(skerrors.ErrCodeUnavailable, "reading status document", err)
	}

	return &sink.Document{
		Name:        documentName(resp, mode),
		ContentType: resp.Header.Get("Content-Type"),
		Binary:      mode == status.ModeArchive,
		Data:        data,
	}, nil
}

// FetchProviders retrieves the provider navigation listing.
func (c *Client) FetchProviders(ctx context.Context) ([]status.Info, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, defaults.ListingTimeout)
	defer cancel()

	resp, err := c.get(fetchCtx, "/v1/status/providers")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var infos []status.Info
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, skerrors.Wrap(skerrors.ErrCodeInternal, "decoding provider listing", err)
	}
	return infos, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, skerrors.Wrap(skerrors.ErrCodeInternal, "creating request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, skerrors.Wrap(skerrors.ErrCodeUnavailable,
			fmt.Sprintf("request to %s failed", c.baseURL+path), err)
	}
	return resp, nil
}

// documentPath maps a mode and optional label filter onto the daemon's
// route table. The archive route has no per-label variant.
func documentPath(mode status.Mode, label string) (string, error) {
	switch mode {
	case status.ModeFlat:
		if label != "" {
			return "/v1/status/" + url.PathEscape(label) + ".txt", nil
		}
		return "/v1/status.txt", nil
	case status.ModeArchive:
		if label != "" {
			return "", skerrors.New(skerrors.ErrCodeInvalidRequest,
				"label filters apply to flat captures only")
		}
		return "/v1/status.zip", nil
	default:
		return "", skerrors.NewWithContext(skerrors.ErrCodeInvalidRequest,
			"mode is not capturable", map[string]any{
				"mode": string(mode),
			})
	}
}

// documentName takes the daemon's download filename, falling back to a
// fixed name when the header is absent or unparseable.
func documentName(resp *http.Response, mode status.Mode) string {
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
	}
	if mode == status.ModeArchive {
		return "status.zip"
	}
	return "status.txt"
}

// responseError converts a non-OK daemon response into a structured error,
// preserving the envelope's code and message when one is present.
func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var envelope server.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Code != "" {
		return skerrors.NewWithContext(skerrors.ErrorCode(envelope.Code), envelope.Message,
			map[string]any{
				"status":    resp.Status,
				"requestId": envelope.RequestID,
			})
	}

	return skerrors.NewWithContext(skerrors.ErrCodeUnavailable,
		"unexpected response from daemon", map[string]any{
			"status": resp.Status,
		})
}
