// Package genai is the live generative backend, speaking the Gemini generateContent API.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"
)

var ErrEmptyResponse = errors.New("model returned no text")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// Client calls the model once per prompt. There are no retries; the gateway owns the deadline.
type Client struct {
	http   *resty.Client
	model  string
	logger zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("x-goog-api-key", cfg.APIKey)
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{http: rc, model: model, logger: logger}
}

func (c *Client) Name() string { return "gemini" }

func (c *Client) Generate(ctx context.Context, prompt string) (domain.AIResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}).
		SetPathParam("model", c.model).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return domain.AIResult{}, fmt.Errorf("gemini request: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		c.logger.Warn().Int("status_code", resp.StatusCode()).Str("model", c.model).Msg("gemini returned an error")
		return domain.AIResult{}, fmt.Errorf("gemini %d: %s", resp.StatusCode(), msg)
	}

	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text")
	if !text.Exists() || text.String() == "" {
		return domain.AIResult{}, ErrEmptyResponse
	}
	return domain.AIResult{Status: domain.AIStatusSuccess, Response: text.String()}, nil
}
