package checkers

import (
	"context"
	"errors"
)

var ErrCredentialMissing = errors.New("OPENAI_API_KEY is not set")

type CredentialSource interface {
	Credential() (string, bool)
}

// CredentialChecker reports not ready until the provider API key is configured.
type CredentialChecker struct {
	src CredentialSource
}

func NewCredentialChecker(src CredentialSource) *CredentialChecker {
	return &CredentialChecker{src: src}
}

func (c *CredentialChecker) Name() string { return "credential" }

func (c *CredentialChecker) Check(_ context.Context) error {
	if _, ok := c.src.Credential(); !ok {
		return ErrCredentialMissing
	}
	return nil
}
