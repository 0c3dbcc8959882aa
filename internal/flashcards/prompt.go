package flashcards

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an academic assistant writing flashcards for a student.

Rules:
- Write 3-5 flashcards for the topic you are given.
- Each card has a "front" with a question and a "back" with a short answer.
- Use only facts stated in the content. Do not invent facts.
- Each card covers a different fact.
- Keep the back under two sentences.`

func buildUserMessage(topic, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	b.WriteString("Content:\n")
	b.WriteString(strings.TrimSpace(content))
	return b.String()
}
