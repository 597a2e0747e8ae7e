package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/vokinneberg/vidya-vriksha/internal/knowledge"
	"github.com/vokinneberg/vidya-vriksha/internal/query"
	"github.com/vokinneberg/vidya-vriksha/internal/rag"
	"github.com/vokinneberg/vidya-vriksha/internal/types"
)

type handlerMocks struct {
	queries   *MockQueryService
	ingester  *MockDocumentIngester
	knowledge *MockKnowledgeLister
}

func newHandlerMocks(ctrl *gomock.Controller) handlerMocks {
	return handlerMocks{
		queries:   NewMockQueryService(ctrl),
		ingester:  NewMockDocumentIngester(ctrl),
		knowledge: NewMockKnowledgeLister(ctrl),
	}
}

func (m handlerMocks) handler() *Handler {
	return NewHandlers(m.queries, m.ingester, m.knowledge)
}

func requestBody(t *testing.T, v interface{}) []byte {
	t.Helper()

	if str, ok := v.(string); ok {
		return []byte(str)
	}
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	return body
}

func TestHandler_QueryHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockQueryService)
		wantStatus     int
		wantContains   string
		wantNotContain string
	}{
		{
			name:        "offline query",
			requestBody: QueryReq{Question: "What is photosynthesis?", Language: "English", Offline: true},
			setupMocks: func(qs *MockQueryService) {
				qs.EXPECT().
					Answer(gomock.Any(), query.OfflineQuery{Question: "What is photosynthesis?", Language: "english"}).
					Return(&types.QueryResponse{
						Question: "What is photosynthesis?",
						Answer:   "Plants make food.",
						Sources:  []string{"science", "biology"},
						Language: "english",
						Mode:     query.ModeOffline,
					}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"mode":"offline"`,
		},
		{
			name:        "online is the default mode",
			requestBody: `{"question":"What is gravity?"}`,
			setupMocks: func(qs *MockQueryService) {
				qs.EXPECT().
					Answer(gomock.Any(), query.OnlineQuery{Question: "What is gravity?", Language: "english"}).
					Return(&types.QueryResponse{
						Question: "What is gravity?",
						Answer:   "X",
						Sources:  []string{"llm"},
						Language: "english",
						Mode:     query.ModeOnline,
					}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"sources":["llm"]`,
		},
		{
			name:        "invalid JSON",
			requestBody: "invalid json",
			setupMocks:  func(*MockQueryService) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "empty question",
			requestBody: QueryReq{Question: ""},
			setupMocks:  func(*MockQueryService) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "whitespace question",
			requestBody: QueryReq{Question: "   ", Offline: true},
			setupMocks:  func(*MockQueryService) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "upstream failure",
			requestBody: QueryReq{Question: "What is gravity?"},
			setupMocks: func(qs *MockQueryService) {
				qs.EXPECT().
					Answer(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: %w", query.ErrUpstreamFailure, errors.New("secret provider detail")))
			},
			wantStatus:     http.StatusBadGateway,
			wantNotContain: "secret provider detail",
		},
		{
			name:        "invalid request from service",
			requestBody: QueryReq{Question: "What is gravity?"},
			setupMocks: func(qs *MockQueryService) {
				qs.EXPECT().Answer(gomock.Any(), gomock.Any()).Return(nil, query.ErrInvalidRequest)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "unexpected failure",
			requestBody: QueryReq{Question: "What is gravity?", Offline: true},
			setupMocks: func(qs *MockQueryService) {
				qs.EXPECT().Answer(gomock.Any(), gomock.Any()).Return(nil, errors.New("internal state dump"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantContains:   "Failed to process query",
			wantNotContain: "internal state dump",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newHandlerMocks(ctrl)
			tt.setupMocks(mocks.queries)

			req := httptest.NewRequest(http.MethodPost, "/api/ai/query", bytes.NewBuffer(requestBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			mocks.handler().QueryHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("QueryHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantContains != "" && !strings.Contains(w.Body.String(), tt.wantContains) {
				t.Errorf("QueryHandler() body = %s, want containing %q", w.Body.String(), tt.wantContains)
			}
			if tt.wantNotContain != "" && strings.Contains(w.Body.String(), tt.wantNotContain) {
				t.Errorf("QueryHandler() body = %s, must not contain %q", w.Body.String(), tt.wantNotContain)
			}
		})
	}
}

func TestHandler_IngestHandler(t *testing.T) {
	tests := []struct {
		name        string
		requestBody interface{}
		setupMocks  func(*MockDocumentIngester)
		wantStatus  int
		wantID      string
	}{
		{
			name: "successful ingestion",
			requestBody: IngestReq{
				ID:       "doc1",
				Text:     "Plants use sunlight to make food.",
				Language: "English",
				Topics:   []string{"science"},
			},
			setupMocks: func(ingester *MockDocumentIngester) {
				ingester.EXPECT().
					Ingest(gomock.Any(), rag.Document{
						ID:       "doc1",
						Text:     "Plants use sunlight to make food.",
						Language: "english",
						Topics:   []string{"science"},
					}).
					Return("doc1", nil)
			},
			wantStatus: http.StatusOK,
			wantID:     "doc1",
		},
		{
			name:        "ingestion without ID or language",
			requestBody: IngestReq{Text: "test document"},
			setupMocks: func(ingester *MockDocumentIngester) {
				ingester.EXPECT().
					Ingest(gomock.Any(), rag.Document{Text: "test document", Language: "english"}).
					Return("generated-id", nil)
			},
			wantStatus: http.StatusOK,
			wantID:     "generated-id",
		},
		{
			name:        "invalid JSON",
			requestBody: "invalid json",
			setupMocks:  func(*MockDocumentIngester) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "empty text",
			requestBody: IngestReq{Text: " ", ID: "doc1"},
			setupMocks:  func(*MockDocumentIngester) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "ingestion fails",
			requestBody: IngestReq{Text: "test document", ID: "doc1"},
			setupMocks: func(ingester *MockDocumentIngester) {
				ingester.EXPECT().Ingest(gomock.Any(), gomock.Any()).Return("", errors.New("ingestion error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newHandlerMocks(ctrl)
			tt.setupMocks(mocks.ingester)

			req := httptest.NewRequest(http.MethodPost, "/api/ai/documents", bytes.NewBuffer(requestBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			mocks.handler().IngestHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("IngestHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var response map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("IngestHandler() invalid JSON response: %v", err)
				}
				if response["status"] != "success" {
					t.Errorf("IngestHandler() status = %q, want %q", response["status"], "success")
				}
				if response["id"] != tt.wantID {
					t.Errorf("IngestHandler() id = %q, want %q", response["id"], tt.wantID)
				}
			}
		})
	}
}

func TestHandler_KnowledgeHandler(t *testing.T) {
	records := []knowledge.Record{
		{Question: "What is photosynthesis?", Answer: "Plants make food.", Language: "english", Topics: []string{"science"}},
	}

	tests := []struct {
		name         string
		target       string
		wantLanguage string
		returned     []knowledge.Record
		wantCount    int
	}{
		{name: "all records", target: "/api/ai/knowledge", wantLanguage: "", returned: records, wantCount: 1},
		{name: "language is normalized", target: "/api/ai/knowledge?language=English", wantLanguage: "english", returned: records, wantCount: 1},
		{name: "unknown language", target: "/api/ai/knowledge?language=tamil", wantLanguage: "tamil", returned: []knowledge.Record{}, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newHandlerMocks(ctrl)
			mocks.knowledge.EXPECT().Records(tt.wantLanguage).Return(tt.returned)

			w := httptest.NewRecorder()
			mocks.handler().KnowledgeHandler(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("KnowledgeHandler() status = %d, want %d", w.Code, http.StatusOK)
			}

			var response types.KnowledgeResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("KnowledgeHandler() invalid JSON: %v", err)
			}
			if response.Count != tt.wantCount || len(response.Records) != tt.wantCount {
				t.Errorf("KnowledgeHandler() count = %d, records = %d, want %d", response.Count, len(response.Records), tt.wantCount)
			}
			if !strings.Contains(w.Body.String(), `"records":[`) {
				t.Errorf("KnowledgeHandler() body = %s, want records array", w.Body.String())
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		message     string
		err         error
		wantError   string
		wantMessage string
	}{
		{
			name:        "client error shows cause",
			status:      http.StatusBadRequest,
			message:     "Invalid request",
			err:         errors.New("validation failed"),
			wantError:   "Bad Request",
			wantMessage: "Invalid request: validation failed",
		},
		{
			name:        "server error hides cause",
			status:      http.StatusInternalServerError,
			message:     "Server error",
			err:         errors.New("connection string leaked"),
			wantError:   "Internal Server Error",
			wantMessage: "Server error",
		},
		{
			name:        "error without cause",
			status:      http.StatusBadGateway,
			message:     "Upstream error",
			wantError:   "Bad Gateway",
			wantMessage: "Upstream error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			errorResponse(w, tt.status, tt.message, tt.err)

			if w.Code != tt.status {
				t.Errorf("errorResponse() status = %d, want %d", w.Code, tt.status)
			}

			var response types.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("errorResponse() invalid JSON: %v", err)
			}
			if response.Error != tt.wantError {
				t.Errorf("errorResponse() Error = %q, want %q", response.Error, tt.wantError)
			}
			if response.Message != tt.wantMessage {
				t.Errorf("errorResponse() Message = %q, want %q", response.Message, tt.wantMessage)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()

	HealthHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("HealthHandler() status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("HealthHandler() invalid JSON: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("HealthHandler() status = %q, want %q", response["status"], "ok")
	}
}
