package rag

import (
	"reflect"
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func TestPassageFromPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]*qdrant.Value
		want    Passage
		wantOK  bool
	}{
		{
			name: "full payload",
			payload: qdrant.NewValueMap(map[string]any{
				payloadText:     "Plants make food.",
				payloadDocID:    "notes",
				payloadLanguage: "english",
				payloadTopics:   []any{"science", "biology"},
			}),
			want: Passage{
				Text:     "Plants make food.",
				DocID:    "notes",
				Language: "english",
				Topics:   []string{"science", "biology"},
			},
			wantOK: true,
		},
		{
			name: "without topics",
			payload: qdrant.NewValueMap(map[string]any{
				payloadText:     "पौधे भोजन बनाते हैं।",
				payloadLanguage: "hindi",
			}),
			want: Passage{
				Text:     "पौधे भोजन बनाते हैं।",
				Language: "hindi",
			},
			wantOK: true,
		},
		{
			name:    "missing text",
			payload: qdrant.NewValueMap(map[string]any{payloadDocID: "notes"}),
			wantOK:  false,
		},
		{
			name:    "nil payload",
			payload: nil,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := passageFromPayload(tt.payload)

			if ok != tt.wantOK {
				t.Fatalf("passageFromPayload() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("passageFromPayload() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
