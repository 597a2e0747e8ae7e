package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is returned when a record cannot be added to a store
var ErrInvalidRecord = errors.New("invalid knowledge record")

// Record is a single question/answer pair of the offline knowledge base.
// Question and Answer are written in Language.
type Record struct {
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Language string   `json:"language" yaml:"language"`
	Topics   []string `json:"topics" yaml:"topics"`
}

// Store is an immutable, ordered collection of records.
// It is safe for concurrent use since nothing mutates it after NewStore.
type Store struct {
	records    []Record
	byLanguage map[string][]int
	languages  []string
}

// NewStore validates records and builds a store preserving their order
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		records:    make([]Record, 0, len(records)),
		byLanguage: make(map[string][]int),
	}

	for i, r := range records {
		if r.Language == "" {
			return nil, fmt.Errorf("%w: record %d has no language", ErrInvalidRecord, i)
		}
		if strings.TrimSpace(r.Question) == "" || strings.TrimSpace(r.Answer) == "" {
			return nil, fmt.Errorf("%w: record %d needs both question and answer", ErrInvalidRecord, i)
		}

		r.Topics = cloneStrings(r.Topics)
		s.records = append(s.records, r)

		if _, ok := s.byLanguage[r.Language]; !ok {
			s.languages = append(s.languages, r.Language)
		}
		s.byLanguage[r.Language] = append(s.byLanguage[r.Language], len(s.records)-1)
	}

	return s, nil
}

// Records returns all records when language is empty, otherwise the records
// whose language equals it exactly. An unknown language yields an empty slice.
func (s *Store) Records(language string) []Record {
	if language == "" {
		out := make([]Record, len(s.records))
		for i, r := range s.records {
			out[i] = r
			out[i].Topics = cloneStrings(r.Topics)
		}
		return out
	}

	idx := s.byLanguage[language]
	out := make([]Record, 0, len(idx))
	for _, i := range idx {
		r := s.records[i]
		r.Topics = cloneStrings(r.Topics)
		out = append(out, r)
	}
	return out
}

// Languages returns the distinct record languages in first-seen order
func (s *Store) Languages() []string {
	return cloneStrings(s.languages)
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.records)
}

// each calls fn for the records of language in store order until fn returns false.
// It avoids the copies Records makes.
func (s *Store) each(language string, fn func(Record) bool) {
	for _, i := range s.byLanguage[language] {
		if !fn(s.records[i]) {
			return
		}
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
