package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONResponse asks the provider for a JSON document instead of prose.
	JSONResponse bool
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part represents a message part: text or an attached media blob
type Part struct {
	Text  string
	Media *Media
}

// Media is an image or audio recording attached to a message
type Media struct {
	MIMEType string
	Data     []byte
}

// IsAudio reports whether the media is a sound recording.
func (m *Media) IsAudio() bool {
	mime := strings.ToLower(m.MIMEType)
	return strings.HasPrefix(mime, "audio/") || mime == "video/webm"
}

// IsImage reports whether the media is a picture.
func (m *Media) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(m.MIMEType), "image/")
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text joins the text parts of the response.
func (r *Response) Text() string {
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// TextRequest builds a single-turn request with one user message.
func TextRequest(system string, parts ...Part) *Request {
	req := &Request{
		Messages: []Message{{Role: "user", Parts: parts}},
	}
	if system != "" {
		req.SystemInstruction = &Message{Role: "system", Parts: []Part{{Text: system}}}
	}
	return req
}
