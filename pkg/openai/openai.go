package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
)

func newOpenAIImpl(cfg Config) *openAIImpl {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &openAIImpl{
		name:               cfg.Name,
		model:              cfg.Model,
		transcriptionModel: cfg.TranscriptionModel,
		client:             client,
	}
}

func (o *openAIImpl) Name() string {
	return o.name
}

func (o *openAIImpl) Model() string {
	return o.model
}

// ChatCompletion sends a chat completion request
func (o *openAIImpl) ChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	var resp chatResponse
	err := o.request(ctx, chatCompletionsPath, &resp, func(r *resty.Request) {
		r.SetBody(o.transformRequest(req))
	})
	if err != nil {
		return nil, err
	}

	out := &Response{
		Model: resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
		out.FinishReason = resp.Choices[0].FinishReason
	}
	return out, nil
}

// Transcribe uploads audio to the transcription endpoint
func (o *openAIImpl) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("%s: empty audio", o.name)
	}

	var resp transcriptionResponse
	err := o.request(ctx, transcriptionsPath, &resp, func(r *resty.Request) {
		r.SetFileReader("file", "recording"+audioExtension(audio, mimeType), bytes.NewReader(audio)).
			SetFormData(map[string]string{
				"model":           o.transcriptionModel,
				"response_format": "json",
			})
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (o *openAIImpl) request(ctx context.Context, path string, result any, callback func(r *resty.Request)) error {
	var errResp errorResponse
	req := o.client.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&errResp)
	if callback != nil {
		callback(req)
	}

	res, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%s: failed to call API: %w", o.name, err)
	}
	if res.IsError() {
		msg := errResp.Error.Message
		if msg == "" {
			msg = res.String()
		}
		return fmt.Errorf("%s: API error %d: %s", o.name, res.StatusCode(), msg)
	}
	return nil
}

func (o *openAIImpl) transformRequest(req *Request) chatRequest {
	out := chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)+1),
	}
	if req.JSONMode {
		out.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	if req.SystemInstruction != "" {
		out.Messages = append(out.Messages, chatMessage{Role: roleSystem, Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, transformMessage(msg))
	}
	return out
}

// transformMessage keeps text-only messages as plain strings, which every
// compatible backend accepts, and switches to content parts for images.
func transformMessage(msg Message) chatMessage {
	role := msg.Role
	if role == "" {
		role = roleUser
	}

	hasImage := false
	for _, p := range msg.Parts {
		if p.Image != nil {
			hasImage = true
			break
		}
	}

	if !hasImage {
		texts := make([]string, 0, len(msg.Parts))
		for _, p := range msg.Parts {
			if p.Text != "" {
				texts = append(texts, p.Text)
			}
		}
		return chatMessage{Role: role, Content: strings.Join(texts, "\n")}
	}

	parts := make([]contentPart, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		if p.Text != "" {
			parts = append(parts, contentPart{Type: "text", Text: p.Text})
		}
		if p.Image != nil {
			parts = append(parts, contentPart{
				Type:     "image_url",
				ImageURL: &imageURL{URL: dataURL(p.Image)},
			})
		}
	}
	return chatMessage{Role: role, Content: parts}
}

func dataURL(img *Image) string {
	mime := img.MIMEType
	if mime == "" {
		mime = mimetype.Detect(img.Data).String()
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// audioExtension picks a file name extension the transcription endpoint uses
// to recognise the container format.
func audioExtension(audio []byte, mimeType string) string {
	if m := mimetype.Lookup(mimeType); m != nil && m.Extension() != "" {
		return m.Extension()
	}
	if ext := mimetype.Detect(audio).Extension(); ext != "" {
		return ext
	}
	return ".webm"
}
