package rag

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// Payload keys stored with every point
const (
	payloadText       = "text"
	payloadDocID      = "doc_id"
	payloadChunkIndex = "chunk_index"
	payloadLanguage   = "language"
	payloadTopics     = "topics"
)

// QdrantClient wraps Qdrant client and stores study material passages
type QdrantClient struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantClient creates a new Qdrant client
func NewQdrantClient(host string, port int, collection string) (*QdrantClient, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantClient{
		client:     client,
		collection: collection,
	}, nil
}

// Close closes the underlying gRPC connection
func (qc *QdrantClient) Close() error {
	return qc.client.Close()
}

// EnsureCollection ensures the collection exists with the correct configuration
func (qc *QdrantClient) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	if _, err := qc.client.GetCollectionInfo(ctx, qc.collection); err == nil {
		return nil
	}

	err := qc.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: qc.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	// Searches filter by language, re-ingestion deletes by doc_id
	for _, field := range []string{payloadLanguage, payloadDocID} {
		_, err = qc.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
			CollectionName: qc.collection,
			FieldName:      field,
			FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s index: %w", field, err)
		}
	}

	return nil
}

// UpsertPoints upserts points (passages) into the collection
func (qc *QdrantClient) UpsertPoints(ctx context.Context, pointsToUpsert []*qdrant.PointStruct) error {
	_, err := qc.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: qc.collection,
		Points:         pointsToUpsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// DeleteDocument removes every point stored for docID
func (qc *QdrantClient) DeleteDocument(ctx context.Context, docID string) error {
	_, err := qc.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: qc.collection,
		Wait:           qdrant.PtrOf(true),
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(payloadDocID, docID),
			},
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to delete document points: %w", err)
	}
	return nil
}

// Search returns the passages of the given language closest to vector
func (qc *QdrantClient) Search(ctx context.Context, vector []float32, language string, limit uint64) ([]Passage, error) {
	searchResult, err := qc.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: qc.collection,
		Query:          qdrant.NewQuery(vector...),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(payloadLanguage, language),
			},
		},
		Limit:       &limit,
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	passages := make([]Passage, 0, len(searchResult))
	for _, result := range searchResult {
		if p, ok := passageFromPayload(result.Payload); ok {
			p.Score = float32(result.Score)
			passages = append(passages, p)
		}
	}

	return passages, nil
}

func passageFromPayload(payload map[string]*qdrant.Value) (Passage, bool) {
	text := payload[payloadText].GetStringValue()
	if text == "" {
		return Passage{}, false
	}

	p := Passage{
		Text:     text,
		DocID:    payload[payloadDocID].GetStringValue(),
		Language: payload[payloadLanguage].GetStringValue(),
	}
	for _, v := range payload[payloadTopics].GetListValue().GetValues() {
		if topic := v.GetStringValue(); topic != "" {
			p.Topics = append(p.Topics, topic)
		}
	}

	return p, true
}
