package consult

import "errors"

var (
	ErrMissingCredential = errors.New("OPENAI_API_KEY is not set: add OPENAI_API_KEY=sk-... to the environment or a .env file")
	ErrEmptyInput        = errors.New("please enter a question")
)

// ProviderError wraps any failure of the completion call itself:
// transport, auth, quota, or an unreadable response.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }
