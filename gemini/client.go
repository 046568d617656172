// Package gemini wraps the hosted Gemini API behind three operations
// (summarize, translate, combined) and normalizes whatever text the
// model returns. Responses are never assumed to be valid JSON.
package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"urdu-digest/config"
)

const summarizeInstruction = `
You are a content summarization assistant for blog posts. Analyze the provided text and produce a structured summary.
The response MUST be a valid JSON object with two keys:
1. summary: A concise summary of the blog post, no more than 1000 characters, written in English.
2. keyPoints: An array of 3-5 short strings, each one key takeaway from the post.
You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
`

const translateInstruction = `
You are a professional English-to-Urdu translator. Translate the provided text into natural, fluent Urdu.
Keep the meaning and tone of the original. Do not translate proper nouns, brand names, or technical terms that have no common Urdu equivalent.
Respond with the Urdu translation ONLY: no commentary, no preamble such as "Urdu translation:", no transliteration.
`

const combinedInstruction = `
You are a content summarization and translation assistant for blog posts. Analyze the provided text.
The response MUST be a valid JSON object with three keys:
1. summary: A concise summary of the blog post, no more than 1000 characters, written in English.
2. keyPoints: An array of 3-5 short strings, each one key takeaway from the post.
3. summaryUrdu: The summary translated into natural, fluent Urdu (Arabic script).
You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
`

// RequestLog captures one model round trip for the ai_logs store.
type RequestLog struct {
	Operation    string     `json:"operation"`
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	Success      bool       `json:"success"`
	ErrorMessage string     `json:"error_message,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
	CompletedAt  time.Time  `json:"completed_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

type Client struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewClient builds a Gemini client from config. The API key comes from
// the GEMINI_API_KEY environment variable.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{client: client, modelName: cfg.ModelName, timeout: timeout}, nil
}

// Summarize asks the model for a JSON {summary, keyPoints} response.
func (c *Client) Summarize(ctx context.Context, text string) (string, *RequestLog, error) {
	return c.generate(ctx, "summarize", summarizeInstruction, text)
}

// Translate asks the model for an Urdu rendering of text.
func (c *Client) Translate(ctx context.Context, text string) (string, *RequestLog, error) {
	return c.generate(ctx, "translate", translateInstruction, text)
}

// SummarizeAndTranslate requests summary and Urdu translation in a
// single round trip.
func (c *Client) SummarizeAndTranslate(ctx context.Context, text string) (string, *RequestLog, error) {
	return c.generate(ctx, "summarize_translate", combinedInstruction, text)
}

func (c *Client) generate(ctx context.Context, op, instruction, text string) (string, *RequestLog, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqLog := &RequestLog{
		Operation:   op,
		Prompt:      fmt.Sprintf("%s\n\n%s", instruction, text),
		ModelName:   c.modelName,
		RequestedAt: startTime,
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	)
	reqLog.LatencyMs = time.Since(startTime).Milliseconds()
	reqLog.CompletedAt = time.Now()
	if err != nil {
		reqLog.ErrorMessage = err.Error()
		return "", reqLog, err
	}

	raw := result.Text()
	reqLog.Response = raw
	reqLog.Success = true
	reqLog.ModelVersion = result.ModelVersion
	if result.UsageMetadata != nil {
		reqLog.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	// Whitespace-only responses count as empty: downstream parsing would
	// otherwise treat them as a successful round trip.
	if strings.TrimSpace(raw) == "" {
		err := fmt.Errorf("empty response from model")
		reqLog.Success = false
		reqLog.ErrorMessage = err.Error()
		return "", reqLog, err
	}

	return raw, reqLog, nil
}
