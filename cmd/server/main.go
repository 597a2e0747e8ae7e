package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vokinneberg/vidya-vriksha/internal/config"
	"github.com/vokinneberg/vidya-vriksha/internal/knowledge"
	"github.com/vokinneberg/vidya-vriksha/internal/llm"
	"github.com/vokinneberg/vidya-vriksha/internal/query"
	"github.com/vokinneberg/vidya-vriksha/internal/rag"

	httphandler "github.com/vokinneberg/vidya-vriksha/internal/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Offline knowledge base
	store, err := knowledge.Load(ctx, cfg.KnowledgePath)
	if err != nil {
		slog.Error("Failed to load knowledge base", "error", err, "path", cfg.KnowledgePath)
		os.Exit(1)
	}
	slog.Info("Loaded knowledge base", "records", store.Len(), "languages", store.Languages())

	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIEmbedModel)
	slog.Info("Initialized OpenAI client", "model", cfg.OpenAIModel)

	qdrantClient, err := rag.NewQdrantClient(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantCollection)
	if err != nil {
		slog.Error("Failed to create Qdrant client", "error", err)
		os.Exit(1)
	}
	defer qdrantClient.Close()
	slog.Info("Initialized Qdrant client", "collection", cfg.QdrantCollection)

	chunker := rag.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)

	// Online responder
	pipeline, err := rag.NewPipeline(chunker, llmClient, qdrantClient, cfg.SearchLimit)
	if err != nil {
		slog.Error("Failed to create RAG pipeline", "error", err)
		os.Exit(1)
	}
	slog.Info("Initialized RAG pipeline", "chunk_size", cfg.ChunkSize, "chunk_overlap", cfg.ChunkOverlap)

	dispatcher := query.NewDispatcher(knowledge.NewSubstringMatcher(store), pipeline)
	handler := httphandler.NewHandlers(dispatcher, pipeline, store)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: httphandler.NewRouter(handler),
	}

	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
