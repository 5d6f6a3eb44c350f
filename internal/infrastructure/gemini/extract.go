package gemini

import "strings"

// ExtractJSON strips the decoration Gemini tends to wrap JSON answers in:
// markdown code fences and any prose before the first '{' or after the last
// '}'. The returned string is ready for json.Unmarshal; if the text contains
// no object at all the fence-stripped text is returned as-is.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	}
	if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}") + 1
	if start != -1 && end != 0 {
		text = text[start:end]
	}

	return strings.TrimSpace(text)
}
