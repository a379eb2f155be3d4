package steps

import (
	"regexp"
	"strings"
)

// Marker patterns tried in order. The first one that yields at least one
// step wins. RE2 has no lookahead, so content is sliced between
// consecutive marker positions instead of captured directly.
var markerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)Step\s+\d+[:.]\s*`),
	regexp.MustCompile(`(?is)\d+[:.]\s*`),
	regexp.MustCompile(`(?is)Step\s+\d+\s*`),
}

// Extract splits a solution text into an ordered list of steps.
//
// It tries explicit step markers first ("Step 1:", "1.", "Step 1"),
// then falls back to paragraph splitting, then line splitting, and
// finally returns the whole text as a single step. The result is never
// empty for non-blank input.
func Extract(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	for _, pattern := range markerPatterns {
		if parsed := splitByMarkers(trimmed, pattern); len(parsed) > 0 {
			return parsed
		}
	}

	if paragraphs := splitNonEmpty(trimmed, "\n\n"); len(paragraphs) > 1 {
		return paragraphs
	}

	if lines := splitNonEmpty(trimmed, "\n"); len(lines) > 1 {
		return lines
	}

	return []string{trimmed}
}

func splitByMarkers(text string, marker *regexp.Regexp) []string {
	locations := marker.FindAllStringIndex(text, -1)
	if len(locations) == 0 {
		return nil
	}

	var out []string
	for i, loc := range locations {
		end := len(text)
		if i+1 < len(locations) {
			end = locations[i+1][0]
		}
		step := strings.TrimSpace(text[loc[1]:end])
		if step != "" {
			out = append(out, step)
		}
	}
	return out
}

func splitNonEmpty(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
