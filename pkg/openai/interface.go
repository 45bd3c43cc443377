package openai

import "context"

// IOpenAI is a client for OpenAI-compatible chat and transcription APIs.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// ChatCompletion sends a chat completion request
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Transcribe converts recorded speech to text
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)

	// Name returns the configured provider name
	Name() string

	// Model returns the chat model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
