package llm

import "fmt"

const (
	summarizeTemperature = 0.3
	summarizeMaxTokens   = 350

	blendTemperature = 0.4
	blendMaxTokens   = 300

	directTemperature = 0.5
	directMaxTokens   = 250
)

const (
	summarizeSystemTemplate = "You are a %s news assistant. Answer succinctly and factually using only the info implied by the articles list. If timing is uncertain, say so. Include 2-4 bullet points and end with a short 'Sources' list of the most relevant URLs."

	blendSystemTemplate = "You are an expert on %s and its technology. Be concise and accurate."

	directSystemTemplate = "You are an expert on %s and its technology. Be clear and practical."
)

type prompts struct {
	topic           string
	summarizeSystem string
	blendSystem     string
	directSystem    string
}

func newPrompts(topic string) prompts {
	return prompts{
		topic:           topic,
		summarizeSystem: fmt.Sprintf(summarizeSystemTemplate, topic),
		blendSystem:     fmt.Sprintf(blendSystemTemplate, topic),
		directSystem:    fmt.Sprintf(directSystemTemplate, topic),
	}
}

func (p prompts) summarizeUser(digest, question string) string {
	return fmt.Sprintf("Recent %s-related articles:\n%s\n\nUser question: %s\n\nSummarize and answer:", p.topic, digest, question)
}

func (p prompts) blendUser(question, summary string) string {
	return fmt.Sprintf("User question: %s\n\nUse this news digest to answer:\n%s", question, summary)
}
