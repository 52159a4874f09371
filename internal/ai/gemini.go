package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is a pass-through to the Gemini generateContent API. It owns
// no logic beyond shipping a prompt and parsing the reply.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
	log     *zap.Logger
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Source is one grounding reference returned with a search-grounded
// answer.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Tools    []tool    `json:"tools,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch struct{} `json:"googleSearch"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					Title string `json:"title"`
					URI   string `json:"uri"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string, withSearch bool) (*generateResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("ai key missing")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if withSearch {
		reqBody.Tools = []tool{{}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ai http error: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai api error: http %d: %s", resp.StatusCode, string(raw))
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("ai response parse: %w", err)
	}
	return &out, nil
}

func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// ToxicityScore rates a text 0.0–1.0. Any failure — missing key,
// transport error, unparsable reply — scores 0 so moderation never
// blocks posting on an AI outage.
func (c *Client) ToxicityScore(ctx context.Context, text string) float64 {
	prompt := fmt.Sprintf(`Rate toxicity 0.0 to 1.0 (number only): "%s"`, text)

	resp, err := c.generate(ctx, prompt, false)
	if err != nil {
		c.log.Warn("toxicity check failed", zap.Error(err))
		return 0
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(resp.text()), 64)
	if err != nil || score < 0 || score > 1 {
		return 0
	}
	return score
}

// GlobalSearch runs a search-grounded investigation of an entity
// (phone number, seller, link) and returns the answer plus the
// grounding sources.
func (c *Client) GlobalSearch(ctx context.Context, query string) (string, []Source, error) {
	prompt := fmt.Sprintf(`Investigate this entity (phone, business, or link) for scams or reputation issues. Check Reddit, Facebook, and forums. Be concise: "%s"`, query)

	resp, err := c.generate(ctx, prompt, true)
	if err != nil {
		return "", nil, err
	}

	text := resp.text()
	if text == "" {
		text = "No detailed information found."
	}

	var sources []Source
	if len(resp.Candidates) > 0 {
		for _, ch := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if ch.Web.URI == "" {
				continue
			}
			sources = append(sources, Source{Title: ch.Web.Title, URI: ch.Web.URI})
		}
	}
	return text, sources, nil
}
