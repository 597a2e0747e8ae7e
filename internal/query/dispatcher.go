package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vokinneberg/vidya-vriksha/internal/knowledge"
	"github.com/vokinneberg/vidya-vriksha/internal/types"
)

// FallbackAnswer is returned in offline mode when no record matches
const FallbackAnswer = "I could not find an answer to that question in my offline knowledge base."

//go:generate mockgen -source=dispatcher.go -destination=mock_responder.go -package=query Responder

// Responder answers questions online, e.g. with a language model
type Responder interface {
	Respond(ctx context.Context, question, language string) (string, []string, error)
}

// Dispatcher routes queries to the offline matcher or the online responder
type Dispatcher struct {
	matcher   knowledge.Matcher
	responder Responder
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(matcher knowledge.Matcher, responder Responder) *Dispatcher {
	return &Dispatcher{
		matcher:   matcher,
		responder: responder,
	}
}

// Answer answers q and wraps the result in a response envelope.
// A missing offline answer is not an error; a failing responder is reported as ErrUpstreamFailure.
func (d *Dispatcher) Answer(ctx context.Context, q Query) (*types.QueryResponse, error) {
	if q == nil || strings.TrimSpace(q.question()) == "" {
		return nil, ErrInvalidRequest
	}

	question := q.question()
	language := NormalizeLanguage(q.language())

	var (
		answer  string
		sources []string
	)

	switch q.(type) {
	case OfflineQuery:
		record, ok := d.matcher.Match(question, language)
		if ok {
			slog.Debug("Offline knowledge matched", "language", language, "matched", record.Question)
			answer = record.Answer
			sources = append([]string{}, record.Topics...)
		} else {
			slog.Debug("No offline knowledge matched", "language", language)
			answer = FallbackAnswer
		}

	case OnlineQuery:
		var err error
		answer, sources, err = d.responder.Respond(ctx, question, language)
		if err != nil {
			slog.Error("Online responder failed", "error", err, "language", language)
			return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
		}

	default:
		return nil, fmt.Errorf("%w: unsupported query type %T", ErrInvalidRequest, q)
	}

	if sources == nil {
		sources = []string{}
	}

	return &types.QueryResponse{
		Question: question,
		Answer:   answer,
		Sources:  sources,
		Language: language,
		Mode:     q.mode(),
	}, nil
}
