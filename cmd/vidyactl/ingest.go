package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagIngestLanguage string
	flagIngestTopics   []string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <dir>",
	Short: "Load .txt and .md study material into the online knowledge index",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&flagIngestLanguage, "language", "english", "Language of the documents")
	ingestCmd.Flags().StringSliceVar(&flagIngestTopics, "topics", nil, "Topic tags attached to every document")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	files, err := studyFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt or .md files found in %s", args[0])
	}

	failed := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			slog.Error("Failed to read file", "file", file, "error", err)
			failed++
			continue
		}

		req := map[string]any{
			"id":       strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
			"text":     string(content),
			"language": flagIngestLanguage,
			"topics":   flagIngestTopics,
		}

		var resp struct {
			ID string `json:"id"`
		}
		if err := postJSON("/api/ai/documents", req, &resp); err != nil {
			slog.Error("Failed to ingest file", "file", file, "error", err)
			failed++
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ingested %s as %s\n", file, resp.ID)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// studyFiles lists the study material files of dir in name order
func studyFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".md":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
