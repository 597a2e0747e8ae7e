package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vokinneberg/vidya-vriksha/internal/knowledge"
	"github.com/vokinneberg/vidya-vriksha/internal/query"
	"github.com/vokinneberg/vidya-vriksha/internal/rag"
	"github.com/vokinneberg/vidya-vriksha/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=http

// QueryService answers knowledge queries
type QueryService interface {
	Answer(ctx context.Context, q query.Query) (*types.QueryResponse, error)
}

// DocumentIngester stores study material used for online answers
type DocumentIngester interface {
	Ingest(ctx context.Context, doc rag.Document) (string, error)
}

// KnowledgeLister lists offline knowledge records
type KnowledgeLister interface {
	Records(language string) []knowledge.Record
}

type QueryReq struct {
	Question string `json:"question"`
	Language string `json:"language,omitempty"`
	Offline  bool   `json:"offline,omitempty"`
}

type IngestReq struct {
	ID       string   `json:"id,omitempty"`
	Text     string   `json:"text"`
	Language string   `json:"language,omitempty"`
	Topics   []string `json:"topics,omitempty"`
}

type Handler struct {
	queries   QueryService
	ingester  DocumentIngester
	knowledge KnowledgeLister
}

// NewHandlers creates handlers with their dependencies
func NewHandlers(queries QueryService, ingester DocumentIngester, knowledge KnowledgeLister) *Handler {
	return &Handler{
		queries:   queries,
		ingester:  ingester,
		knowledge: knowledge,
	}
}

func (h *Handler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req QueryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	q, err := query.NewQuery(req.Question, req.Language, req.Offline)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Question is required", nil)
		return
	}

	response, err := h.queries.Answer(r.Context(), q)
	switch {
	case err == nil:
	case errors.Is(err, query.ErrInvalidRequest):
		errorResponse(w, http.StatusBadRequest, "Question is required", nil)
		return
	case errors.Is(err, query.ErrUpstreamFailure):
		slog.Error("Error answering online query", "error", err, "language", req.Language)
		errorResponse(w, http.StatusBadGateway, "Failed to get an answer from the online responder", nil)
		return
	default:
		slog.Error("Error answering query", "error", err, "offline", req.Offline)
		errorResponse(w, http.StatusInternalServerError, "Failed to process query", nil)
		return
	}

	jsonResponse(w, http.StatusOK, response)
}

func (h *Handler) IngestHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req IngestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		errorResponse(w, http.StatusBadRequest, "Text is required", nil)
		return
	}

	doc := rag.Document{
		ID:       req.ID,
		Text:     req.Text,
		Language: query.NormalizeLanguage(req.Language),
		Topics:   req.Topics,
	}

	id, err := h.ingester.Ingest(r.Context(), doc)
	if err != nil {
		slog.Error("Error ingesting document", "error", err, "doc_id", req.ID)
		errorResponse(w, http.StatusInternalServerError, "Failed to ingest document", nil)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"status": "success", "id": id})
}

func (h *Handler) KnowledgeHandler(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language != "" {
		language = query.NormalizeLanguage(language)
	}

	records := h.knowledge.Records(language)
	response := types.KnowledgeResponse{
		Language: language,
		Count:    len(records),
		Records:  make([]types.KnowledgeRecord, 0, len(records)),
	}
	for _, rec := range records {
		response.Records = append(response.Records, types.KnowledgeRecord{
			Question: rec.Question,
			Answer:   rec.Answer,
			Language: rec.Language,
			Topics:   rec.Topics,
		})
	}

	jsonResponse(w, http.StatusOK, response)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// errorResponse writes a JSON error. err is only shown to clients for 4xx statuses.
func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorMsg := message
	if err != nil && status < http.StatusInternalServerError {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	if err := json.NewEncoder(w).Encode(types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	}); err != nil {
		slog.Error("Error encoding error response", "error", err, "status", status)
	}
}
