package query

import (
	"errors"
	"strings"
)

// DefaultLanguage is used when a request does not name a language
const DefaultLanguage = "english"

// Mode names reported back to callers
const (
	ModeOffline = "offline"
	ModeOnline  = "online"
)

var (
	// ErrInvalidRequest is returned for requests without a question
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUpstreamFailure is returned when the online responder fails
	ErrUpstreamFailure = errors.New("upstream failure")
)

// Query is either an OfflineQuery or an OnlineQuery
type Query interface {
	question() string
	language() string
	mode() string
}

// OfflineQuery is answered from the local knowledge base only
type OfflineQuery struct {
	Question string
	Language string
}

// OnlineQuery is answered by the online responder
type OnlineQuery struct {
	Question string
	Language string
}

func (q OfflineQuery) question() string { return q.Question }
func (q OfflineQuery) language() string { return q.Language }
func (q OfflineQuery) mode() string     { return ModeOffline }

func (q OnlineQuery) question() string { return q.Question }
func (q OnlineQuery) language() string { return q.Language }
func (q OnlineQuery) mode() string     { return ModeOnline }

// NewQuery validates the raw request fields and returns the matching query variant
func NewQuery(question, language string, offline bool) (Query, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrInvalidRequest
	}

	language = NormalizeLanguage(language)
	if offline {
		return OfflineQuery{Question: question, Language: language}, nil
	}
	return OnlineQuery{Question: question, Language: language}, nil
}

// NormalizeLanguage lower-cases language and falls back to DefaultLanguage
func NormalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return DefaultLanguage
	}
	return language
}
