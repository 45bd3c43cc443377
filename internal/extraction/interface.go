package extraction

import (
	"context"

	"note-task-planner/internal/model"
)

// TextProvider is the external vision/speech/language capability.
// StructureTasks returns the provider's raw reply; decoding is left to the caller.
type TextProvider interface {
	RecognizeText(ctx context.Context, media model.RawMedia) (string, error)
	StructureTasks(ctx context.Context, text string) (string, error)
}

// UseCase turns uploaded media into candidate tasks. Nothing is persisted.
type UseCase interface {
	// ExtractText returns the verbatim text found in an image or spoken in a recording.
	ExtractText(ctx context.Context, media model.RawMedia) (string, error)

	// StructureTasks turns free text into normalized candidate tasks.
	StructureTasks(ctx context.Context, text string) ([]model.CandidateTask, error)

	// ExtractCandidates runs ExtractText then StructureTasks.
	ExtractCandidates(ctx context.Context, sc model.Scope, media model.RawMedia) (ExtractOutput, error)
}
