package llmprovider

import (
	"context"
	"fmt"

	"note-task-planner/pkg/gemini"
	"note-task-planner/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface.
// Gemini reads both images and audio inline.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          make([]gemini.Content, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	if req.JSONResponse {
		geminiReq.ResponseMIMEType = "application/json"
	}
	for i := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, *convertToGeminiContent(&req.Messages[i]))
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	role := msg.Role
	if role == "assistant" {
		role = "model"
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.Media != nil {
			parts[i].InlineData = &gemini.Blob{MIMEType: p.Media.MIMEType, Data: p.Media.Data}
		}
	}
	return &gemini.Content{Role: role, Parts: parts}
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface. It
// serves OpenAI itself and the compatible DeepSeek and Qwen endpoints.
// Audio goes through the transcription endpoint when the backend has one.
type OpenAIAdapter struct {
	client        openai.IOpenAI
	vision        bool
	transcription bool
}

// NewOpenAIAdapter creates a new adapter. vision and transcription declare
// whether the backend accepts images and audio.
func NewOpenAIAdapter(client openai.IOpenAI, vision, transcription bool) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, vision: vision, transcription: transcription}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if audio := findAudio(req); audio != nil {
		return a.transcribe(ctx, audio)
	}

	chatReq := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONResponse,
		Messages:    make([]openai.Message, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		chatReq.SystemInstruction = joinText(req.SystemInstruction.Parts)
	}

	for _, msg := range req.Messages {
		out := openai.Message{Role: msg.Role, Parts: make([]openai.Part, 0, len(msg.Parts))}
		for _, p := range msg.Parts {
			if p.Media == nil {
				out.Parts = append(out.Parts, openai.Part{Text: p.Text})
				continue
			}
			if !a.vision || !p.Media.IsImage() {
				return nil, fmt.Errorf("%s: %w: %s", a.Name(), ErrUnsupportedInput, p.Media.MIMEType)
			}
			out.Parts = append(out.Parts, openai.Part{
				Text:  p.Text,
				Image: &openai.Image{MIMEType: p.Media.MIMEType, Data: p.Media.Data},
			})
		}
		chatReq.Messages = append(chatReq.Messages, out)
	}

	resp, err := a.client.ChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: resp.Text}}},
		ProviderName: a.Name(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAIAdapter) transcribe(ctx context.Context, audio *Media) (*Response, error) {
	if !a.transcription {
		return nil, fmt.Errorf("%s: %w: %s", a.Name(), ErrUnsupportedInput, audio.MIMEType)
	}
	text, err := a.client.Transcribe(ctx, audio.Data, audio.MIMEType)
	if err != nil {
		return nil, err
	}
	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: text}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.client.Name()
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func findAudio(req *Request) *Media {
	for _, msg := range req.Messages {
		for _, p := range msg.Parts {
			if p.Media != nil && p.Media.IsAudio() {
				return p.Media
			}
		}
	}
	return nil
}

func joinText(parts []Part) string {
	var out string
	for _, p := range parts {
		if p.Text == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += p.Text
	}
	return out
}
