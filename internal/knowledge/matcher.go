package knowledge

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher selects the record answering a question, if any
type Matcher interface {
	Match(question, language string) (Record, bool)
}

// SubstringMatcher matches a question against stored questions by
// case-insensitive containment: a record qualifies when the user's question
// contains the stored question. The first qualifying record in store order wins.
type SubstringMatcher struct {
	store *Store
}

// NewSubstringMatcher creates a matcher over store
func NewSubstringMatcher(store *Store) *SubstringMatcher {
	return &SubstringMatcher{store: store}
}

// Match returns the first record of lang whose question is contained in question
func (m *SubstringMatcher) Match(question, lang string) (Record, bool) {
	// Casers keep state between calls and must not be shared across goroutines.
	caser := cases.Lower(language.Und)
	needle := caser.String(question)

	var (
		found Record
		ok    bool
	)
	m.store.each(lang, func(r Record) bool {
		if strings.Contains(needle, caser.String(r.Question)) {
			found = r
			found.Topics = cloneStrings(r.Topics)
			ok = true
			return false
		}
		return true
	})

	return found, ok
}
