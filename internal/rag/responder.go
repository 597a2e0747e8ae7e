package rag

import (
	"context"
	"log/slog"
)

// LLMSource is always the first source of an online answer
const LLMSource = "llm"

// Respond answers question in language with the language model, using the
// retrieved passages as context. Sources are LLMSource followed by the
// distinct topics of the passages.
func (p *Pipeline) Respond(ctx context.Context, question, language string) (string, []string, error) {
	passages, err := p.Retrieve(ctx, question, language)
	if err != nil {
		return "", nil, err
	}
	slog.Debug("Retrieved passages", "count", len(passages), "language", language)

	answer, err := p.llmClient.GenerateAnswer(ctx, formatContext(passages), question, language)
	if err != nil {
		return "", nil, err
	}

	return answer, sourcesOf(passages), nil
}

func sourcesOf(passages []Passage) []string {
	sources := []string{LLMSource}
	seen := map[string]bool{LLMSource: true}
	for _, p := range passages {
		for _, t := range p.Topics {
			if !seen[t] {
				seen[t] = true
				sources = append(sources, t)
			}
		}
	}
	return sources
}
