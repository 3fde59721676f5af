// Package translate obtains per-language translations for source literals
// from an OpenAI-compatible chat-completion service.
//
// One literal is translated per request, with a single user message and no
// retry or timeout layer: the pipeline holds at most one request in flight
// and a transport failure propagates to the caller. Failures local to one
// literal (empty completion, unparsable completion text) are soft: they
// are reported through sentinel errors so the pipeline can log, skip and
// naturally retry the literal on a future run.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/autoi18n/autoi18n/cache"
	"github.com/autoi18n/autoi18n/langmeta"
)

const (
	// DefaultBaseURL is the OpenAI API base.
	DefaultBaseURL = "https://api.openai.com/v1"
	// Model is the fixed completion model used for every request.
	Model = "gpt-4o-mini"
)

// RequestLangs is the fixed language set named in every translation
// request. It is deliberately independent of the language list configured
// for the generated runtime module (see DESIGN.md).
var RequestLangs = []string{"en", "es", "zh", "fr", "hi", "ja"}

// Soft failure sentinels: the literal is skipped for this run and, since
// it never enters the cache, retried on the next one.
var (
	// ErrNoContent marks a completion with no message content.
	ErrNoContent = errors.New("completion returned no message content")
	// ErrBadPayload marks completion text with no parsable JSON object.
	ErrBadPayload = errors.New("completion text contains no JSON object")
)

// IsSoft reports whether err affects one literal only and should not
// abort the run.
func IsSoft(err error) bool {
	return errors.Is(err, ErrNoContent) || errors.Is(err, ErrBadPayload)
}

// Client calls the completion service. The zero Style is valid and means
// no extra style directive is appended to the prompt.
type Client struct {
	// BaseURL is the service base URL (DefaultBaseURL when empty).
	BaseURL string
	// APIKey is the bearer credential.
	APIKey string
	// Style is an optional caller-supplied style directive, appended to
	// the prompt verbatim.
	Style string

	// httpClient has no timeout: a hung request stalls the run, as does
	// the rest of the strictly sequential pipeline.
	httpClient *http.Client
}

// New returns a client for the given credential and style directive.
func New(apiKey, style string) *Client {
	return &Client{APIKey: apiKey, Style: style, httpClient: &http.Client{}}
}

// Translate requests a translation record for literal. Hard errors
// (transport, non-200 status) propagate; soft failures satisfy IsSoft.
func (c *Client) Translate(ctx context.Context, literal string) (cache.Record, error) {
	body, err := buildChatRequest(BuildPrompt(literal, c.Style))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	endpoint := strings.TrimRight(base, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	client := c.httpClient
	if client == nil {
		client = &http.Client{}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	content, err := completionContent(respBody)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("translating %q: %w", literal, ErrNoContent)
	}

	rec, err := ExtractObject(content)
	if err != nil {
		return nil, fmt.Errorf("translating %q: %w", literal, err)
	}
	return rec, nil
}

// BuildPrompt assembles the fixed natural-language instruction for one
// literal: the six-language target set, the required tone, the optional
// style directive, the JSON output shape with a worked example, and the
// literal itself.
func BuildPrompt(literal, style string) string {
	var names []string
	for _, code := range RequestLangs {
		names = append(names, fmt.Sprintf("%s (%s)", langmeta.Name(code), code))
	}

	var b strings.Builder
	b.WriteString("Translate the following UI text into these languages: ")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(".\n")
	b.WriteString("Keep each translation concise and professional, appropriate for a user interface.\n")
	if style != "" {
		b.WriteString(style)
		b.WriteString("\n")
	}
	b.WriteString("Respond with a single JSON object mapping language code to translation, for example:\n")
	b.WriteString(`{"en":"Save","es":"Guardar","zh":"保存","fr":"Enregistrer","hi":"सहेजें","ja":"保存"}` + "\n")
	b.WriteString("Text to translate:\n")
	b.WriteString(literal)
	return b.String()
}

// ExtractObject recovers a JSON object from free-form completion text
// that may carry leading or trailing prose. It slices from the first '{'
// to the last '}' and strict-parses the slice. This is a best-effort
// decoder: a translation legitimately containing an unescaped '}' before
// the object's true closing brace defeats it, and the literal is then
// skipped for the run.
func ExtractObject(text string) (cache.Record, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: %s", ErrBadPayload, truncate(text, 200))
	}
	var rec cache.Record
	if err := json.Unmarshal([]byte(text[start:end+1]), &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return rec, nil
}

// buildChatRequest marshals an OpenAI chat/completions body with a single
// user message.
func buildChatRequest(prompt string) ([]byte, error) {
	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	req := struct {
		Model    string `json:"model"`
		Messages []msg  `json:"messages"`
	}{
		Model: Model,
		Messages: []msg{
			{Role: "user", Content: prompt},
		},
	}
	return json.Marshal(req)
}

// completionContent extracts choices[0].message.content, surfacing API
// error messages when present.
func completionContent(body []byte) (string, error) {
	var resp struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("invalid JSON response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("API error: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoContent
	}
	return resp.Choices[0].Message.Content, nil
}

// truncate shortens s for log and error output.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
