// Package ai talks to the Gemini generateContent REST API to produce
// resume writing suggestions.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/dvasic/resumecraft-api/internal/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Suggestion is the shape the model is asked to answer with. When the model
// wraps its answer in prose the raw text ends up in Corrected and the lists
// fall back to generic advice.
type Suggestion struct {
	Corrected   string   `json:"corrected"`
	Keywords    []string `json:"keywords"`
	Suggestions []string `json:"suggestions"`
}

func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
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

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func buildPrompt(text, sectionContext string) string {
	var b strings.Builder
	b.WriteString(`You are an expert ATS resume writing assistant. Improve the provided text with:
- Grammar and clarity improvements
- Concise, impactful phrasing
- ATS-friendly, role-relevant keywords (avoid buzzword stuffing)
- Keep the user's voice and intent
- Return JSON with keys: corrected, keywords (array), suggestions (array of bullet strings)`)
	if sectionContext != "" {
		b.WriteString("\nContext about the section: ")
		b.WriteString(sectionContext)
	}
	b.WriteString("\n\nText:\n")
	b.WriteString(text)
	return b.String()
}

// Suggest sends the text to the model and parses its answer.
func (c *Client) Suggest(ctx context.Context, text, sectionContext string) (*Suggestion, error) {
	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(text, sectionContext)}}}},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return parseSuggestion(gr.Candidates[0].Content.Parts[0].Text), nil
}

var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

// parseSuggestion pulls the JSON object out of the model's answer. Models
// sometimes wrap the JSON in prose or markdown fences, so the first brace
// block is tried before giving up and treating the whole answer as the
// corrected text.
func parseSuggestion(raw string) *Suggestion {
	candidate := raw
	if m := jsonBlock.FindString(raw); m != "" {
		candidate = m
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(candidate), &s); err != nil {
		return &Suggestion{
			Corrected: raw,
			Keywords:  []string{},
			Suggestions: []string{
				"Consider adding measurable impact (metrics, outcomes).",
				"Use action verbs and relevant keywords for ATS.",
			},
		}
	}
	if s.Keywords == nil {
		s.Keywords = []string{}
	}
	if s.Suggestions == nil {
		s.Suggestions = []string{}
	}
	return &s
}
