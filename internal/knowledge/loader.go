package knowledge

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

//go:embed corpus.yaml
var defaultCorpus []byte

type corpusFile struct {
	Records []Record `yaml:"records"`
}

// Default returns the store built from the embedded corpus
func Default() (*Store, error) {
	return ParseYAML(defaultCorpus)
}

// Load builds a store from path. An empty path selects the embedded corpus,
// .yaml/.yml files are parsed as YAML and .db/.sqlite files are read as SQLite databases.
func Load(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return Default()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported knowledge source %q", path)
	}
}

// LoadYAML loads a store from a YAML corpus file
func LoadYAML(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML builds a store from YAML corpus data
func ParseYAML(data []byte) (*Store, error) {
	var c corpusFile
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}
	return NewStore(c.Records)
}

// LoadSQLite loads a store from the knowledge_records table of a SQLite database.
// Topics are stored as a JSON array; rows are read in id order.
func LoadSQLite(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open knowledge database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT question, answer, language, topics FROM knowledge_records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r      Record
			topics sql.NullString
		)
		if err := rows.Scan(&r.Question, &r.Answer, &r.Language, &topics); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge record: %w", err)
		}
		if topics.Valid && topics.String != "" {
			if err := json.Unmarshal([]byte(topics.String), &r.Topics); err != nil {
				return nil, fmt.Errorf("invalid topics for %q: %w", r.Question, err)
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read knowledge records: %w", err)
	}

	return NewStore(records)
}
