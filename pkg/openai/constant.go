package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DeepSeekBaseURL is the OpenAI-compatible DeepSeek endpoint
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// QwenBaseURL is the OpenAI-compatible Qwen (DashScope) endpoint
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o"

	// DefaultTranscriptionModel is the default speech-to-text model
	DefaultTranscriptionModel = "whisper-1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

const (
	roleSystem = "system"
	roleUser   = "user"

	chatCompletionsPath = "/chat/completions"
	transcriptionsPath  = "/audio/transcriptions"
)
