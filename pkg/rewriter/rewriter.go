// Package rewriter asks an OpenAI-compatible chat completion endpoint (Groq by default)
// for a kinder phrasing of user-authored text.
package rewriter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are a compassionate writing assistant. You help people rewrite their thoughts " +
	"to be more kind and supportive to themselves, while preserving the original meaning and emotional intent."

const promptTemplate = `Rewrite this text to sound more compassionate and self-kind, while maintaining the original meaning and intent:

Original: %TEXT%

Please make it more supportive and understanding, as if speaking to a friend who needs encouragement.`

var (
	ErrEmptyText     = errors.New("nothing to rewrite")
	ErrEmptyResponse = errors.New("rewrite response has no content")
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration
	HTTPClient  *http.Client
}

type Rewriter struct {
	client openai.Client
	cfg    Config
}

func New(cfg Config) *Rewriter {
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 500
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		// Rewrites are requested inside a user's submit; the caller decides about retries.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Rewriter{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}
}

func (r *Rewriter) Rewrite(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	completion, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(strings.Replace(promptTemplate, "%TEXT%", text, 1)),
		},
		MaxTokens:   openai.Int(r.cfg.MaxTokens),
		Temperature: openai.Float(r.cfg.Temperature),
	})
	if err != nil {
		return "", errors.New("chat completion error: " + err.Error())
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	rewritten := strings.TrimSpace(completion.Choices[0].Message.Content)
	if rewritten == "" {
		return "", ErrEmptyResponse
	}
	return rewritten, nil
}
