package rag

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// text-embedding-3-large produces 3072-dimensional vectors
const embeddingSize = 3072

//go:generate mockgen -source=pipeline.go -destination=mock_pipeline.go -package=rag

// LLMClient defines the interface for LLM operations
type LLMClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateAnswer(ctx context.Context, contextText, question, language string) (string, error)
}

// TextChunker defines the interface for text chunking operations
type TextChunker interface {
	ChunkText(text string) []string
}

// VectorDatabase defines the interface for vector database operations
type VectorDatabase interface {
	EnsureCollection(ctx context.Context, vectorSize uint64) error
	UpsertPoints(ctx context.Context, pointsToUpsert []*qdrant.PointStruct) error
	DeleteDocument(ctx context.Context, docID string) error
	Search(ctx context.Context, queryEmbedding []float32, language string, limit uint64) ([]Passage, error)
}

// Document is study material ingested for online answers
type Document struct {
	ID       string
	Text     string
	Language string
	Topics   []string
}

// Passage is a retrieved chunk of a document
type Passage struct {
	Text     string
	DocID    string
	Language string
	Topics   []string
	Score    float32
}

// Pipeline indexes study material and answers questions with it
type Pipeline struct {
	chunker      TextChunker
	llmClient    LLMClient
	qdrantClient VectorDatabase
	searchLimit  int
}

// NewPipeline creates a new RAG pipeline
func NewPipeline(chunker TextChunker, llmClient LLMClient, qdrantClient VectorDatabase, searchLimit int) (*Pipeline, error) {
	if err := qdrantClient.EnsureCollection(context.Background(), embeddingSize); err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}

	return &Pipeline{
		chunker:      chunker,
		llmClient:    llmClient,
		qdrantClient: qdrantClient,
		searchLimit:  searchLimit,
	}, nil
}

// Ingest chunks, embeds and stores a document. It returns the document ID,
// which is generated when doc.ID is empty. Re-ingesting an ID replaces all of its
// previously stored chunks.
func (p *Pipeline) Ingest(ctx context.Context, doc Document) (string, error) {
	chunks := p.chunker.ChunkText(doc.Text)
	if len(chunks) == 0 {
		return "", fmt.Errorf("no chunks created from text")
	}

	docID := doc.ID
	if docID == "" {
		docID = uuid.NewString()
	}

	topics := make([]any, 0, len(doc.Topics))
	for _, t := range doc.Topics {
		topics = append(topics, t)
	}

	pointsToUpsert := make([]*qdrant.PointStruct, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := p.llmClient.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return "", fmt.Errorf("failed to generate embedding for chunk %d: %w", i, err)
		}

		pointsToUpsert = append(pointsToUpsert, &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID(docID, i)),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: qdrant.NewValueMap(map[string]any{
				payloadText:       chunk,
				payloadDocID:      docID,
				payloadChunkIndex: int64(i),
				payloadLanguage:   doc.Language,
				payloadTopics:     topics,
			}),
		})
	}

	// A shorter re-ingest would otherwise leave stale higher-index chunks behind.
	if doc.ID != "" {
		if err := p.qdrantClient.DeleteDocument(ctx, docID); err != nil {
			return "", fmt.Errorf("failed to replace document %s: %w", docID, err)
		}
	}

	if err := p.qdrantClient.UpsertPoints(ctx, pointsToUpsert); err != nil {
		return "", fmt.Errorf("failed to upsert points: %w", err)
	}

	return docID, nil
}

// Retrieve returns the passages in language most similar to query.
// Finding nothing is not an error.
func (p *Pipeline) Retrieve(ctx context.Context, query, language string) ([]Passage, error) {
	queryEmbedding, err := p.llmClient.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	passages, err := p.qdrantClient.Search(ctx, queryEmbedding, language, uint64(p.searchLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	return passages, nil
}

// pointID derives a stable point ID from a document ID and chunk index
func pointID(docID string, chunk int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(docID+"#"+strconv.Itoa(chunk))).String()
}

// formatContext renders passages as the context block of an answer prompt
func formatContext(passages []Passage) string {
	var b strings.Builder
	for i, p := range passages {
		fmt.Fprintf(&b, "[Document %d, Score: %.4f]\n%s\n\n", i+1, p.Score, p.Text)
	}
	return strings.TrimSpace(b.String())
}
