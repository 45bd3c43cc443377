package provider

import (
	"context"
	"fmt"

	"note-task-planner/internal/extraction"
	"note-task-planner/internal/model"
	"note-task-planner/pkg/llmprovider"
)

// RecognizeText sends the media with a verbatim-transcription instruction.
func (p *implProvider) RecognizeText(ctx context.Context, media model.RawMedia) (string, error) {
	var instruction string
	switch media.Kind() {
	case model.MediaKindImage:
		instruction = imageInstruction
	case model.MediaKindAudio:
		instruction = audioInstruction
	default:
		return "", fmt.Errorf("%w: %s", extraction.ErrUnsupportedMedia, media.MIMEType)
	}

	req := llmprovider.TextRequest("",
		llmprovider.Part{Text: instruction},
		llmprovider.Part{Media: &llmprovider.Media{MIMEType: media.MIMEType, Data: media.Data}},
	)
	req.MaxTokens = p.maxTokens

	resp, err := p.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	p.l.Debugf(ctx, "provider.RecognizeText: provider=%s kind=%s chars=%d", resp.ProviderName, media.Kind(), len(resp.Text()))
	return resp.Text(), nil
}

// StructureTasks asks for a JSON task list and returns the reply untouched.
func (p *implProvider) StructureTasks(ctx context.Context, text string) (string, error) {
	req := llmprovider.TextRequest(structureInstruction, llmprovider.Part{Text: structureUserMessage(text)})
	req.JSONResponse = true
	req.Temperature = 0.2

	resp, err := p.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	p.l.Debugf(ctx, "provider.StructureTasks: provider=%s reply_chars=%d", resp.ProviderName, len(resp.Text()))
	return resp.Text(), nil
}
