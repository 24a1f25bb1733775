package consult

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/artem13815/askexpert/pkg/llm"
	"github.com/artem13815/askexpert/pkg/metrics"
	"github.com/artem13815/askexpert/pkg/persona"
	"github.com/artem13815/askexpert/pkg/prompt"
)

const (
	Model       = "gpt-3.5-turbo"
	Temperature = float32(0.3)
)

// CredentialSource yields the provider API key, if one is configured.
type CredentialSource interface {
	Credential() (string, bool)
}

// Result is the model reply plus request metadata.
type Result struct {
	Answer  string
	Persona persona.Persona
	Model   string
	Elapsed time.Duration
}

// Service asks the completion provider a question on behalf of a persona.
type Service interface {
	Ask(ctx context.Context, userText string, p persona.Persona) (Result, error)
}

type service struct {
	creds    CredentialSource
	provider llm.Provider
	logger   *slog.Logger
}

// NewService creates the default implementation. A nil logger means slog.Default().
func NewService(creds CredentialSource, provider llm.Provider, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{creds: creds, provider: provider, logger: logger}
}

// Validate is the caller-side check that must pass before Ask is called.
func Validate(userText string) error {
	if strings.TrimSpace(userText) == "" {
		return ErrEmptyInput
	}
	return nil
}

func template(p persona.Persona) prompt.ChatTemplate {
	return prompt.FromMessages(
		prompt.Part{Role: llm.RoleSystem, Text: p.Instruction()},
		prompt.Part{Role: llm.RoleUser, Text: "{user_text}"},
	)
}

func (s *service) Ask(ctx context.Context, userText string, p persona.Persona) (Result, error) {
	p = p.Canonical()
	label := p.Key()
	apiKey, ok := s.creds.Credential()
	if !ok {
		metrics.CompletionsTotal.WithLabelValues(label, metrics.OutcomeMissingCredential).Inc()
		s.logger.Warn("completion skipped: credential missing", "persona", label)
		return Result{}, ErrMissingCredential
	}

	msgs, err := template(p).Format(map[string]string{"user_text": userText})
	if err != nil {
		return Result{}, fmt.Errorf("build prompt: %w", err)
	}

	chars := utf8.RuneCountInString(userText)
	metrics.InputChars.Observe(float64(chars))

	start := time.Now()
	answer, err := s.provider.Complete(ctx, llm.Request{
		APIKey:      apiKey,
		Model:       Model,
		Temperature: Temperature,
		Messages:    msgs,
	})
	elapsed := time.Since(start)
	metrics.CompletionDuration.WithLabelValues(label).Observe(elapsed.Seconds())

	if err != nil {
		metrics.CompletionsTotal.WithLabelValues(label, metrics.OutcomeProviderError).Inc()
		s.logger.Error("completion failed",
			"persona", label,
			"input_chars", chars,
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return Result{}, &ProviderError{Err: err}
	}

	metrics.CompletionsTotal.WithLabelValues(label, metrics.OutcomeOK).Inc()
	s.logger.Info("completion done",
		"persona", label,
		"input_chars", chars,
		"answer_chars", utf8.RuneCountInString(answer),
		"duration_ms", elapsed.Milliseconds(),
	)
	return Result{
		Answer:  answer,
		Persona: p,
		Model:   Model,
		Elapsed: elapsed,
	}, nil
}
