// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mchmarny/brewbook/pkg/defaults"
)

// RespondJSON writes a JSON response with the given status code and data.
// The body is encoded before headers are written so an encoding failure
// never produces a partial response.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// HttpReaderUserAgent is sent with every dataset request.
const HttpReaderUserAgent = "brewbook/1.0"

// HttpReaderOption defines a configuration option for HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches documents over HTTP. Transient failures (network
// errors, 429 and 5xx responses) are retried with exponential backoff;
// other 4xx responses fail immediately.
type HttpReader struct {
	UserAgent          string
	MaxElapsed         time.Duration
	MaxBytes           int64
	InsecureSkipVerify bool
	Client             *http.Client

	// newBackOff is replaced in tests to shorten retry intervals.
	newBackOff func() backoff.BackOff
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

// WithTotalTimeout sets the per-attempt client timeout.
func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		if timeout > 0 {
			r.Client.Timeout = timeout
		}
	}
}

// WithMaxElapsed bounds the total time spent retrying.
func WithMaxElapsed(d time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.MaxElapsed = d
	}
}

// WithMaxBytes caps the response body size.
func WithMaxBytes(n int64) HttpReaderOption {
	return func(r *HttpReader) {
		r.MaxBytes = n
	}
}

// WithInsecureSkipVerify disables TLS verification.
func WithInsecureSkipVerify(skip bool) HttpReaderOption {
	return func(r *HttpReader) {
		r.InsecureSkipVerify = skip
	}
}

// WithClient replaces the HTTP client. Transport options are not applied to
// a caller-supplied client.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		r.Client = client
	}
}

// NewHttpReader creates a new HttpReader with the specified options.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent:  HttpReaderUserAgent,
		MaxElapsed: defaults.DatasetFetchMaxElapsed,
		MaxBytes:   defaults.DatasetFetchMaxBytes,
		Client: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newDefaultHTTPTransport(),
		},
	}
	for _, opt := range options {
		opt(r)
	}

	if tr, ok := r.Client.Transport.(*http.Transport); ok && r.InsecureSkipVerify {
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		tr.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
	}
	return r
}

func newDefaultHTTPTransport() *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		MaxIdleConns:          10,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

func (r *HttpReader) backOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff
	if r.newBackOff != nil {
		b = r.newBackOff()
	} else {
		eb := backoff.NewExponentialBackOff()
		eb.MaxElapsedTime = r.MaxElapsed
		b = eb
	}
	return backoff.WithContext(b, ctx)
}

// ReadWithContext fetches url and returns the response body.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if r.Client == nil {
		return nil, fmt.Errorf("http client is nil")
	}

	var data []byte
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		body, err := r.fetch(ctx, url)
		if err != nil {
			slog.Debug("dataset fetch attempt failed", "url", url, "attempt", attempt, "error", err)
			return err
		}
		data = body
		return nil
	}, r.backOff(ctx))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// fetch performs one request. Errors that retrying cannot fix are marked
// permanent.
func (r *HttpReader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request for url %s: %w", url, err))
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(fmt.Errorf("http request failed for url %s: %w", url, err))
		}
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
		if retryableStatus(resp.StatusCode) {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	body := io.Reader(resp.Body)
	if r.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, r.MaxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return nil, backoff.Permanent(fmt.Errorf("response from %s exceeds %d bytes", url, r.MaxBytes))
	}
	return data, nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
