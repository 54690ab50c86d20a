package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AdaptationError is a request-scoped failure: without a narrative there is
// nothing to render, so the whole generation request aborts.
type AdaptationError struct {
	Reason string
	Err    error
}

func (e *AdaptationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("narrative adaptation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("narrative adaptation failed: %s", e.Reason)
}

func (e *AdaptationError) Unwrap() error {
	return e.Err
}

// NarrativeCut is one panel descriptor as returned by the model. The model's
// own cut_number is recorded but never trusted for ordering; panels are
// re-numbered by position downstream.
type NarrativeCut struct {
	CutNumber        int    `json:"cut_number"`
	Dialogue         string `json:"dialogue"`
	SceneDescription string `json:"scene_description"`
	ImagePrompt      string `json:"image_prompt"`
}

type Narrative struct {
	FullStory string         `json:"full_story"`
	Cuts      []NarrativeCut `json:"cuts"`
}

type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Adapt sends the assembled narrative prompt to Gemini in JSON mode and
// returns the parsed story with its panel descriptors. The model call is
// retried with backoff; adaptation is request-scoped, so a transient provider
// hiccup should not cost the user the whole generation.
func (c *Client) Adapt(ctx context.Context, prompt string) (*Narrative, error) {
	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"

	var resp *genai.GenerateContentResponse
	err := c.RetryWithBackoff(func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var err error
		resp, err = model.GenerateContent(callCtx, genai.Text(prompt))
		return err
	}, 3)
	if err != nil {
		return nil, &AdaptationError{Reason: "model call failed", Err: err}
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, &AdaptationError{Reason: "model returned no text"}
	}

	narrative, err := ParseNarrative(raw)
	if err != nil {
		return nil, &AdaptationError{Reason: "response is not the expected JSON shape", Err: err}
	}

	return narrative, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// RetryWithBackoff executes a function with exponential backoff retry logic.
func (c *Client) RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// ParseNarrative decodes the model output leniently. Markdown fences around
// the JSON are stripped and missing fields decode to empty values; only a
// body that cannot be decoded at all is an error.
func ParseNarrative(raw string) (*Narrative, error) {
	cleaned := stripFences(raw)

	var narrative Narrative
	if err := json.Unmarshal([]byte(cleaned), &narrative); err != nil {
		return nil, fmt.Errorf("failed to decode narrative: %w", err)
	}

	if narrative.Cuts == nil {
		narrative.Cuts = []NarrativeCut{}
	}
	return &narrative, nil
}

// stripFences removes a ```json ... ``` wrapper some models emit even in
// JSON mode, then trims to the outermost object.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}
