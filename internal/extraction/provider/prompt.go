package provider

const imageInstruction = `Extract all text from this image. Focus on handwritten notes, typed text, whiteboard content or sticky notes.
Return only the extracted text, verbatim, without any analysis, commentary or formatting.`

const audioInstruction = `Transcribe this voice recording accurately, keeping natural punctuation.
Return only the transcribed text without any commentary.`

const structureInstruction = `You are a task organization expert. Analyze the provided text and extract actionable tasks.

For each task, determine:
- title: a clear, concise title (max 50 characters)
- description: optional, only when more context is needed
- priority: exactly one of "low", "medium", "high", based on urgency and importance
- estimatedHours: a realistic number of hours to complete
- deadlinePhrase: the deadline as a human-readable phrase, e.g. "tomorrow", "this week", "next week", "monday". Omit it when the text gives none.

Only extract items that are clearly actionable tasks. Ignore dates on their own, signatures and non-actionable notes.

Respond with a JSON object of the form {"tasks": [...]}. No markdown, no explanation.`

func structureUserMessage(text string) string {
	return "Extract and structure tasks from this text:\n\n" + text
}
