package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

// singleQuoted matches 'value' substrings inside a bracketed pseudo-array
// such as ['Modern', 'Eclectic'] which is not valid JSON
var singleQuoted = regexp.MustCompile(`'([^']*)'`)

// NormalizeTags parses a stored categorical value into its tag list.
// The column history left three encodings behind: a plain string, a JSON
// array literal, and a single-quote pseudo-array. All of them reduce to an
// ordered list of trimmed, non-empty strings.
// Returns nil for empty input. Never fails: malformed values degrade to a
// best-effort comma split.
func NormalizeTags(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	// Plain single value
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return []string{trimmed}
	}

	// 1. Strict JSON array
	var elements []interface{}
	if err := json.Unmarshal([]byte(trimmed), &elements); err == nil {
		var tags []string
		for _, element := range elements {
			var s string
			switch v := element.(type) {
			case string:
				s = v
			case nil:
				continue
			case bool:
				if !v {
					continue
				}
				s = "true"
			default:
				// Numbers and nested values are re-rendered through JSON
				if f, ok := v.(float64); ok && f == 0 {
					continue
				}
				b, merr := json.Marshal(v)
				if merr != nil {
					continue
				}
				s = string(b)
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			tags = append(tags, s)
		}
		return tags
	}

	// 2. Single-quoted pseudo-array: ['a', 'b']
	if matches := singleQuoted.FindAllStringSubmatch(trimmed, -1); len(matches) > 0 {
		var tags []string
		for _, m := range matches {
			value := strings.TrimSpace(m[1])
			if value == "" {
				continue
			}
			tags = append(tags, value)
		}
		if len(tags) > 0 {
			return tags
		}
		return nil
	}

	// 3. Fallback: split the inner content on commas
	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	var tags []string
	for _, piece := range strings.Split(inner, ",") {
		value := strings.TrimSpace(piece)
		value = strings.Trim(value, `"'`)
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		tags = append(tags, value)
	}
	return tags
}

// NormalizeTagList cleans an already-array source (Drive sync, tests):
// trims every entry and drops empties, preserving order.
func NormalizeTagList(values []string) []string {
	var tags []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		tags = append(tags, trimmed)
	}
	return tags
}

// JoinTags renders a tag list for display
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// MatchesFilter reports whether a stored categorical value matches a filter
// selection. An empty selection imposes no constraint. Otherwise at least
// one of the value's tags must appear in the selection, compared
// case-insensitively (intersection, not subset).
func MatchesFilter(raw string, selected []string) bool {
	return MatchesTagSelection(NormalizeTags(raw), selected)
}

// MatchesTagSelection is MatchesFilter over an already-normalized tag list
func MatchesTagSelection(tags []string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range tags {
		for _, want := range selected {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}
