package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/artem13815/askexpert/pkg/llm"
)

// Client is a chat completions client for OpenAI and OpenAI-compatible APIs.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

// New returns a client. An empty baseURL means the public OpenAI endpoint.
// The HTTP client is left at its defaults: no timeout is imposed here.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		httpDo:  &http.Client{},
	}
}

func (c *Client) sdk(apiKey string) *goopenai.Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	cfg.HTTPClient = c.httpDo
	return goopenai.NewClientWithConfig(cfg)
}

// Complete sends the message list and returns the first reply verbatim.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	if req.APIKey == "" {
		return "", errors.New("openai: api key is empty")
	}
	msgs := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}

	resp, err := c.sdk(req.APIKey).CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    msgs,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", describe(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}

func describe(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("openai http %d: %w", apiErr.HTTPStatusCode, err)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("openai http %d: %w", reqErr.HTTPStatusCode, err)
	}
	return fmt.Errorf("openai: %w", err)
}
