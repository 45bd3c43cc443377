package usecase

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"note-task-planner/internal/model"
)

const (
	untitledTask   = "Untitled Task"
	maxTitleLength = 50
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// decodeCandidates parses a structuring reply. It accepts a bare JSON array
// or an object with a "tasks" array, optionally inside markdown fences. ok
// is false when the reply had no usable list; the result is then empty.
func decodeCandidates(raw string) ([]model.CandidateTask, bool) {
	var doc any
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &doc); err != nil {
		return []model.CandidateTask{}, false
	}

	var items []any
	switch v := doc.(type) {
	case []any:
		items = v
	case map[string]any:
		list, isList := v["tasks"].([]any)
		if !isList {
			return []model.CandidateTask{}, false
		}
		items = list
	default:
		return []model.CandidateTask{}, false
	}

	out := make([]model.CandidateTask, 0, len(items))
	for _, item := range items {
		obj, isObj := item.(map[string]any)
		if !isObj {
			continue
		}
		out = append(out, normalizeCandidate(obj))
	}
	return out, true
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

func normalizeCandidate(obj map[string]any) model.CandidateTask {
	c := model.CandidateTask{
		Title:          normalizeTitle(stringField(obj, "title")),
		Description:    strings.TrimSpace(stringField(obj, "description")),
		Priority:       model.PriorityMedium,
		EstimatedHours: hoursField(obj, "estimatedHours", "estimated_hours"),
		DeadlinePhrase: strings.TrimSpace(stringField(obj, "deadlinePhrase", "suggestedDeadline", "deadline", "suggested_deadline")),
	}
	if p, ok := model.ParsePriority(stringField(obj, "priority")); ok {
		c.Priority = p
	}
	return c
}

func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return untitledTask
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		title = strings.TrimSpace(string([]rune(title)[:maxTitleLength]))
	}
	return title
}

// stringField returns the first string value found under keys.
func stringField(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// hoursField accepts a JSON number or a numeric string. Non-positive values
// are treated as absent.
func hoursField(obj map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		var h float64
		switch v := obj[k].(type) {
		case float64:
			h = v
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				continue
			}
			h = parsed
		default:
			continue
		}
		if h > 0 && !math.IsInf(h, 1) {
			return &h
		}
	}
	return nil
}
