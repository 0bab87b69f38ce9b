// SPDX-License-Identifier: Apache-2.0

// Package llmclass implements the optional external classification stage
// against a locally hosted text-generation endpoint. The client is fully
// best-effort: any transport error, bad status or unusable completion is
// returned to the caller, who degrades to the next resolution stage.
package llmclass

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/formsenseproj/formsense-mcp/internal/match"
)

// DefaultEndpoint is the conventional local generation endpoint.
const DefaultEndpoint = "http://127.0.0.1:8899/api/generate"

const (
	maxNewTokens    = 16
	maxResponseSize = 1 << 16
	// Completions are free text; a fixed confidence below the structured
	// stages but above the acceptance cutoff keeps them in the cascade
	// without letting them override deterministic evidence.
	completionConfidence = 0.85
)

// knownKeys is the closed set of attribute names a completion may produce.
// Anything else is treated as a refusal.
var knownKeys = map[string]string{
	"firstname":      "firstName",
	"lastname":       "lastName",
	"fullname":       "fullName",
	"middlename":     "middleName",
	"preferredname":  "preferredName",
	"email":          "email",
	"phone":          "phone",
	"birthday":       "birthday",
	"birthday_day":   "birthDay",
	"birthday_month": "birthMonth",
	"birthday_year":  "birthYear",
	"gender":         "gender",
	"nationality":    "nationality",
	"address1":       "address1",
	"address2":       "address2",
	"city":           "city",
	"state":          "state",
	"postalcode":     "postalCode",
	"countryaddress": "countryAddress",
	"university":     "university",
	"degree":         "degree",
	"major":          "major",
	"gpa":            "gpa",
	"gradyear":       "gradYear",
	"company":        "company",
	"jobtitle":       "jobTitle",
	"experience":     "experience",
	"salary":         "salary",
	"linkedin":       "linkedin",
	"github":         "github",
	"website":        "website",
	"summary":        "summary",
	"none":           "",
}

type generateRequest struct {
	Prompt       string `json:"prompt"`
	MaxNewTokens int    `json:"max_new_tokens"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Client talks to the generation endpoint. The zero value is not usable;
// construct with New.
type Client struct {
	endpoint string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the generation endpoint URL.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a classification client with the default endpoint and the
// default HTTP client. Timeouts are enforced per call through the context,
// not here.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify asks the endpoint which attribute the field represents. It
// returns an error for any transport or protocol failure and an empty-key
// result when the model declines to name an attribute.
func (c *Client) Classify(ctx context.Context, fc match.FieldContext) (match.Result, error) {
	body, err := json.Marshal(generateRequest{
		Prompt:       buildPrompt(fc),
		MaxNewTokens: maxNewTokens,
	})
	if err != nil {
		return match.Result{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return match.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return match.Result{}, fmt.Errorf("call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return match.Result{}, fmt.Errorf("generation endpoint returned %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return match.Result{}, fmt.Errorf("read response: %w", err)
	}
	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return match.Result{}, fmt.Errorf("decode response: %w", err)
	}

	key, ok := parseCompletion(gr.Response)
	if !ok {
		return match.Result{}, fmt.Errorf("unusable completion %q", gr.Response)
	}
	if key == "" {
		return match.Result{}, nil
	}
	return match.Result{Key: key, Confidence: completionConfidence}, nil
}

func buildPrompt(fc match.FieldContext) string {
	var b strings.Builder
	b.WriteString("Classify the form field below as exactly one attribute name from this list: ")
	b.WriteString("firstName, lastName, fullName, middleName, preferredName, email, phone, birthday, ")
	b.WriteString("gender, nationality, address1, address2, city, state, postalCode, countryAddress, ")
	b.WriteString("university, degree, major, gpa, gradYear, company, jobTitle, experience, salary, ")
	b.WriteString("linkedin, github, website, summary. Answer with the attribute name only, or none.\n")
	writePromptLine(&b, "label", fc.Label)
	writePromptLine(&b, "placeholder", fc.Placeholder)
	writePromptLine(&b, "name", fc.Name)
	writePromptLine(&b, "id", fc.ID)
	writePromptLine(&b, "type", fc.InputType)
	b.WriteString("attribute:")
	return b.String()
}

func writePromptLine(b *strings.Builder, field, value string) {
	if value == "" {
		return
	}
	b.WriteString(field)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteByte('\n')
}

// parseCompletion extracts an attribute name from a free-text completion.
// The first token is authoritative; trailing chatter is ignored.
func parseCompletion(text string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return "", false
	}
	token := strings.ToLower(strings.Trim(fields[0], `"'.,:`))
	token = strings.ReplaceAll(token, "-", "_")
	key, ok := knownKeys[token]
	if !ok {
		// Some models answer "the attribute is email"; scan a few more
		// tokens before giving up.
		for _, f := range fields[1:min(len(fields), 6)] {
			t := strings.ToLower(strings.Trim(f, `"'.,:`))
			if k, found := knownKeys[t]; found {
				return k, true
			}
		}
		return "", false
	}
	return key, true
}
