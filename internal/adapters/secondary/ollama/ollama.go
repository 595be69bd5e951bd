// Package ollama provides a ports.BulletEnhancer backed by a self-hosted
// Ollama instance, speaking its /api/chat and /api/tags endpoints.
//
// Grounded on internal/adapters/secondary/groq/groq.go's client shape
// (construction, retry/backoff, context-aware HTTP) retargeted to
// Ollama's chat-message wire format per
// original_source/resume/ai/ollama_client.py.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultMaxTokens = 500

// Config holds Ollama client configuration.
type Config struct {
	BaseURL    string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:11434",
		Model:      "llama3.2:3b",
		MaxRetries: 2,
		Timeout:    60 * time.Second,
	}
}

// Client implements ports.BulletEnhancer using the Ollama API.
type Client struct {
	config     Config
	httpClient *http.Client
}

// New creates a new Ollama client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

const enhanceSystemPrompt = `You are an expert resume writer and ATS optimization specialist.
Your job is to enhance resume bullet points to be:
1. ATS-friendly with relevant keywords
2. Achievement-focused with quantifiable results
3. Action-verb driven
4. Concise (under 25 words)
5. Natural and professional

DO NOT:
- Make up fake numbers or achievements
- Add information not implied in the original
- Use buzzwords or cliches
- Exceed 25 words`

// EnhanceBullet rewrites bulletText for jobTitle, naturally incorporating
// up to 5 of the given keywords.
func (c *Client) EnhanceBullet(ctx context.Context, bulletText, jobTitle string, keywords []string) (string, error) {
	top := keywords
	if len(top) > 5 {
		top = top[:5]
	}

	prompt := fmt.Sprintf(`Original bullet point:
%s

Target role: %s
Priority keywords to naturally incorporate: %s

Enhance this bullet point while maintaining truthfulness. If the bullet already includes metrics, keep them. If not, you may suggest adding "[X]" as a placeholder for a metric.

Return ONLY the enhanced bullet point, nothing else.`, bulletText, jobTitle, strings.Join(top, ", "))

	return c.chat(ctx, enhanceSystemPrompt, prompt, 0.3, defaultMaxTokens)
}

const summarySystemPrompt = `You are an expert resume writer. Create compelling professional summaries that:
1. Highlight relevant experience and skills
2. Incorporate target job keywords naturally
3. Are 3-4 sentences (60-80 words)
4. Use third-person perspective without pronouns
5. Focus on value proposition`

// GenerateSummary drafts a professional summary from the candidate's top
// bullets, skills, and the target job.
func (c *Client) GenerateSummary(ctx context.Context, bullets, skills []string, jobTitle string, keywords []string) (string, error) {
	topBullets := bullets
	if len(topBullets) > 5 {
		topBullets = topBullets[:5]
	}
	var bulletLines strings.Builder
	for _, b := range topBullets {
		text := b
		if len(text) > 100 {
			text = text[:100]
		}
		fmt.Fprintf(&bulletLines, "- %s\n", text)
	}

	topSkills := skills
	if len(topSkills) > 10 {
		topSkills = topSkills[:10]
	}
	topKeywords := keywords
	if len(topKeywords) > 5 {
		topKeywords = topKeywords[:5]
	}

	prompt := fmt.Sprintf(`Target Job: %s

Key Experience:
%s
Top Skills: %s

Priority Keywords: %s

Write a professional summary that positions the candidate as an ideal fit for this %s role.`,
		jobTitle, bulletLines.String(), strings.Join(topSkills, ", "), strings.Join(topKeywords, ", "), jobTitle)

	return c.chat(ctx, summarySystemPrompt, prompt, 0.5, 150)
}

// Available checks whether the Ollama instance is reachable.
func (c *Client) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	httpClient := &http.Client{Timeout: 5 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// chat sends a single-turn chat request with retry/backoff on transport
// failure, returning the trimmed message content.
func (c *Client) chat(ctx context.Context, systemPrompt, prompt string, temperature float64, maxTokens int) (string, error) {
	if !c.Available(ctx) {
		return "", nil
	}

	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream: false,
		Options: chatOptions{
			Temperature: temperature,
			NumPredict:  maxTokens,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/chat", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("ollama: failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("ollama: failed to read response: %w", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("ollama: API error (status %d): %s", resp.StatusCode, string(respBody))
			continue
		}

		var parsed chatResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return "", fmt.Errorf("ollama: failed to parse response: %w", err)
		}

		return strings.TrimSpace(parsed.Message.Content), nil
	}

	return "", fmt.Errorf("ollama: max retries exceeded: %w", lastErr)
}

// Close releases any resources held by the client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
