package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiBaseURL = "https://api-inference.huggingface.co/models/"

// fallbackAnswer is returned when the inference response carries no
// recognizable completion field.
const fallbackAnswer = "Sorry, I could not generate an answer."

// Client calls the Hugging Face inference API for text generation.
type Client struct {
	apiKey     string
	model      string
	baseAPIURL string
	httpClient *http.Client
}

// NewClient constructs a Hugging Face client.
func NewClient(apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("HF_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("HF_MODEL is required")
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseAPIURL: apiBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens   int  `json:"max_new_tokens"`
	ReturnFullText bool `json:"return_full_text"`
}

type generateResult struct {
	GeneratedText string `json:"generated_text"`
	Error         string `json:"error"`
}

// Generate posts the prompt to the inference endpoint and normalizes the
// response to a single plain-text answer.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens:   300,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", err
	}

	endpoint := c.baseAPIURL + url.PathEscape(c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read inference response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("inference status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return normalizeAnswer(raw)
}

// normalizeAnswer maps the closed set of inference response shapes to one
// answer string: an array of results, a single result object, or either
// carrying an error field. Anything else falls back to a fixed answer.
func normalizeAnswer(raw []byte) (string, error) {
	var results []generateResult
	if err := json.Unmarshal(raw, &results); err == nil {
		if len(results) == 0 {
			return fallbackAnswer, nil
		}
		if results[0].Error != "" {
			return "", fmt.Errorf("inference error: %s", results[0].Error)
		}
		if results[0].GeneratedText != "" {
			return results[0].GeneratedText, nil
		}
		return fallbackAnswer, nil
	}

	var result generateResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("undecodable inference response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("inference error: %s", result.Error)
	}
	if result.GeneratedText != "" {
		return result.GeneratedText, nil
	}
	return fallbackAnswer, nil
}
