package provider

import (
	"note-task-planner/internal/extraction"
	"note-task-planner/pkg/llmprovider"
	"note-task-planner/pkg/log"
)

type implProvider struct {
	l         log.Logger
	llm       *llmprovider.Manager
	maxTokens int
}

var _ extraction.TextProvider = (*implProvider)(nil)

// New creates a TextProvider backed by the LLM provider manager.
func New(l log.Logger, llm *llmprovider.Manager, maxTokens int) extraction.TextProvider {
	return &implProvider{
		l:         l,
		llm:       llm,
		maxTokens: maxTokens,
	}
}
