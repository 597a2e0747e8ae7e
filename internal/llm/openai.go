package llm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
)

const (
	defaultSystemPrompt = "You are a patient teacher for school students in rural India.\n" +
		"Explain concepts simply, with everyday examples.\n" +
		"Always answer in {language}, even if the question or the context uses another language."

	defaultAnswerPrompt = "Use the study material below when it is relevant to the question.\n\n" +
		"Study material:\n{context}\n\n" +
		"Question: {question}\n\n" +
		"Give a short, accurate answer in {language}."

	noContext = "(no study material available)"
)

// GenerateAnswer generates an answer in the given language using the retrieved context
func (c *Client) GenerateAnswer(ctx context.Context, contextText, question, language string) (string, error) {
	systemPrompt := c.prompt("system_prompt.txt", defaultSystemPrompt)
	answerPrompt := c.prompt("answer_prompt.txt", defaultAnswerPrompt)

	if strings.TrimSpace(contextText) == "" {
		contextText = noContext
	}

	replacer := strings.NewReplacer(
		"{context}", contextText,
		"{question}", question,
		"{language}", language,
	)

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(replacer.Replace(systemPrompt)),
			openai.UserMessage(replacer.Replace(answerPrompt)),
		},
		Temperature: param.Opt[float64]{Value: 0.3},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	if len(res.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return res.Choices[0].Message.Content, nil
}

// GenerateEmbedding generates an embedding for the given text
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	input := openai.EmbeddingNewParamsInputUnion{
		OfString: param.Opt[string]{Value: text},
	}
	res, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.embedModel),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(res.Data) == 0 {
		return nil, fmt.Errorf("no embedding data in response")
	}

	// Qdrant stores float32 vectors
	embedding := make([]float32, len(res.Data[0].Embedding))
	for i, v := range res.Data[0].Embedding {
		embedding[i] = float32(v)
	}

	return embedding, nil
}

// prompt returns the first prompt file found in the prompt directories, or def
func (c *Client) prompt(name, def string) string {
	for _, dir := range c.promptDirs {
		if p, err := loadPrompt(filepath.Join(dir, name)); err == nil && p != "" {
			return p
		}
	}
	return def
}

// loadPrompt loads a prompt from a file
func loadPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
