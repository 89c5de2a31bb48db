package llm

import "strings"

const paragraphInstruction = "Create a well-structured and coherent paragraph based on the following prompt:"

func buildParagraphPrompt(prompt string) string {
	var b strings.Builder
	b.WriteString(paragraphInstruction)
	b.WriteString("\n\n\"")
	b.WriteString(prompt)
	b.WriteString("\"")
	return b.String()
}
