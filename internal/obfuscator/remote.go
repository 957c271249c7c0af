// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obfuscator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteConfig configures the HTTP obfuscation service client.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

type remoteRequest struct {
	Source  string  `json:"source"`
	Options Options `json:"options"`
}

type remoteResponse struct {
	Code string `json:"code"`
}

// remoteObfuscator posts source to an obfuscation service at
// POST {BaseURL}/obfuscate and expects {"code": "..."} back.
type remoteObfuscator struct {
	client *resty.Client
}

// NewRemoteObfuscator returns an [Obfuscator] backed by an HTTP service.
// No retries are configured: a failed call is a terminal result.
func NewRemoteObfuscator(cfg RemoteConfig) Obfuscator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &remoteObfuscator{client: cli}
}

// Obfuscate implements [Obfuscator].
func (r *remoteObfuscator) Obfuscate(ctx context.Context, source string, opts Options) (string, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(remoteRequest{Source: source, Options: opts}).
		Post("/obfuscate")
	if err != nil {
		return "", fmt.Errorf("%w: obfuscate request: %w", ErrObfuscation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out remoteResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("%w: decode obfuscate response: %w", ErrObfuscation, err)
	}
	if strings.TrimSpace(out.Code) == "" {
		return "", fmt.Errorf("%w: %w", ErrObfuscation, ErrEmptyResult)
	}

	return out.Code, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrObfuscation, resp.StatusCode(), body)
}
