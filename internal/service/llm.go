package service

import "strings"

// StripCodeFences removes a markdown ``` or ```json wrapper from model output.
// Text before an opening fence is dropped along with the fence itself.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "```")
	if start == -1 {
		return text
	}
	text = text[start+3:]
	if idx := strings.Index(text, "\n"); idx != -1 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "json")
	}
	if idx := strings.Index(text, "```"); idx != -1 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// bodyExcerpt keeps upstream error messages to a readable size.
func bodyExcerpt(body []byte) string {
	return string(body[:min(len(body), 500)])
}
