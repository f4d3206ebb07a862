// Package wisdom fetches the capybara's parting words after a run.
//
// Fetch never fails: every problem is turned into one of the fallback
// lines below so the game-over screen always has something to show.
package wisdom

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Fallback lines.
const (
	NoKeyFallback = "A true Capybara finds peace even without an API key. (Configure API_KEY for AI wisdom!)"
	ErrorFallback = "The stars are silent, but the water is warm. (AI Error)"
	EmptyFallback = "Stay chill, friend."
)

// Defaults for the Gemini REST API.
const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-2.5-flash"
	DefaultTimeout  = 20 * time.Second
)

// apiKeyEnv lists the environment variables checked for a key, in order.
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY", "VITE_GEMINI_API_KEY"}

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// Fetcher produces wisdom for a final score.
type Fetcher interface {
	Fetch(ctx context.Context, score int) string
}

// Options configures a Client.
type Options struct {
	Endpoint   string
	Model      string
	APIKey     string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	endpoint string
	model    string
	apiKey   string
	http     *http.Client
	logger   *log.Logger
}

// New creates a client. Empty options fall back to the defaults.
func New(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Client{
		endpoint: strings.TrimRight(opts.Endpoint, "/"),
		model:    opts.Model,
		apiKey:   opts.APIKey,
		http:     opts.HTTPClient,
		logger:   opts.Logger,
	}
}

// APIKeyFromEnv returns the first non-empty key from the environment.
func APIKeyFromEnv() string {
	for _, name := range apiKeyEnv {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// HasKey reports whether the client has a credential.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// Fetch asks the model for a short line about score.
func (c *Client) Fetch(ctx context.Context, score int) string {
	if c.apiKey == "" {
		return NoKeyFallback
	}

	text, err := c.generate(ctx, Prompt(score))
	if err != nil {
		c.logger.Warn("failed to fetch wisdom", "score", score, "error", err)
		return ErrorFallback
	}
	if text == "" {
		return EmptyFallback
	}
	return text
}

// Prompt builds the persona prompt for a final score.
func Prompt(score int) string {
	return fmt.Sprintf(`You are a wise, philosophical, and incredibly chill Capybara who loves yuzu baths and befriending cats.
The player just finished a game collecting yuzus and cats with a score of %d.

Generate a short, cute, and very relaxing quote (max 20 words) to comfort them or celebrate their chill vibes.
If the score is low (<50), be encouraging.
If the score is high (>200), be impressed but stay chill.
Don't mention "game over", just focus on the vibes.`, score)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := requestBody(prompt)
	if err != nil {
		return "", fmt.Errorf("wisdom: build request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("wisdom: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("wisdom: request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("wisdom: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(data, "error.message").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("wisdom: status %d: %s", resp.StatusCode, msg)
	}

	return responseText(data)
}

// requestBody builds {"contents":[{"parts":[{"text": prompt}]}]}.
func requestBody(prompt string) ([]byte, error) {
	part, err := sjson.SetBytes([]byte(`{}`), "text", prompt)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes([]byte(`{"contents":[{"parts":[]}]}`), "contents.0.parts.-1", part)
}

var errMalformed = errors.New("wisdom: malformed response")

// responseText joins the text parts of the first candidate.
func responseText(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", errMalformed
	}
	parts := gjson.GetBytes(data, "candidates.0.content.parts")
	if parts.Exists() && !parts.IsArray() {
		return "", errMalformed
	}

	var sb strings.Builder
	parts.ForEach(func(_, part gjson.Result) bool {
		sb.WriteString(part.Get("text").String())
		return true
	})
	return strings.TrimSpace(sb.String()), nil
}
