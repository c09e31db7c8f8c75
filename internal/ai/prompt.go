package ai

import "strings"

const systemInstruction = "You are a helpful study assistant. Answer concisely, use bullets where helpful."

// truncationMarker flags that the document text was cut at the context limit.
const truncationMarker = " ...(content continues)"

// BuildPrompt assembles the generation prompt: fixed system instruction, the
// document text bounded to maxContextChars, then the verbatim question.
func BuildPrompt(docText, question string, maxContextChars int) string {
	context := docText
	if maxContextChars > 0 && len(context) > maxContextChars {
		context = context[:maxContextChars] + truncationMarker
	}

	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\nContext:\n")
	b.WriteString(context)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\nAnswer:")
	return b.String()
}
