package types

// QueryResponse represents an answered question
type QueryResponse struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Sources  []string `json:"sources"`
	Language string   `json:"language"`
	Mode     string   `json:"mode"`
}

// KnowledgeResponse lists offline knowledge records
type KnowledgeResponse struct {
	Language string            `json:"language,omitempty"`
	Count    int               `json:"count"`
	Records  []KnowledgeRecord `json:"records"`
}

// KnowledgeRecord represents a single offline knowledge record
type KnowledgeRecord struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Language string   `json:"language"`
	Topics   []string `json:"topics"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
