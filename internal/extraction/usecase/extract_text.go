package usecase

import (
	"context"
	"fmt"
	"strings"

	"note-task-planner/internal/extraction"
	"note-task-planner/internal/model"
)

// ExtractText asks the provider for the text in an image or recording.
// Whitespace-only results count as a failure.
func (uc *implUseCase) ExtractText(ctx context.Context, media model.RawMedia) (string, error) {
	if len(media.Data) == 0 {
		return "", fmt.Errorf("%w: empty upload", extraction.ErrUnsupportedMedia)
	}
	if media.Kind() == model.MediaKindUnknown {
		return "", fmt.Errorf("%w: %s", extraction.ErrUnsupportedMedia, media.MIMEType)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.provider.RecognizeText(ctx, media)
	if err != nil {
		return "", fmt.Errorf("%w: %w", extraction.ErrExtractionFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", extraction.ErrNoTextExtracted
	}
	return text, nil
}

// ExtractCandidates runs the full pipeline on one upload.
func (uc *implUseCase) ExtractCandidates(ctx context.Context, sc model.Scope, media model.RawMedia) (extraction.ExtractOutput, error) {
	text, err := uc.ExtractText(ctx, media)
	if err != nil {
		uc.l.Warnf(ctx, "extraction.ExtractCandidates: user=%s kind=%s: %v", sc.UserID, media.Kind(), err)
		return extraction.ExtractOutput{}, err
	}

	candidates, err := uc.StructureTasks(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "extraction.ExtractCandidates: user=%s structuring: %v", sc.UserID, err)
		return extraction.ExtractOutput{}, err
	}

	uc.l.Infof(ctx, "extraction.ExtractCandidates: user=%s kind=%s text_chars=%d candidates=%d",
		sc.UserID, media.Kind(), len(text), len(candidates))

	return extraction.ExtractOutput{Text: text, Candidates: candidates}, nil
}
