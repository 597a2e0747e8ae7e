package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagAskLanguage string
	flagAskOffline  bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the knowledge service a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&flagAskLanguage, "language", "english", "Answer language")
	askCmd.Flags().BoolVar(&flagAskOffline, "offline", false, "Answer from the offline knowledge base only")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	req := map[string]any{
		"question": strings.Join(args, " "),
		"language": flagAskLanguage,
		"offline":  flagAskOffline,
	}

	var resp struct {
		Answer   string   `json:"answer"`
		Sources  []string `json:"sources"`
		Language string   `json:"language"`
		Mode     string   `json:"mode"`
	}
	if err := postJSON("/api/ai/query", req, &resp); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, resp.Answer)
	fmt.Fprintf(out, "\n[%s, %s] sources: %s\n", resp.Mode, resp.Language, strings.Join(resp.Sources, ", "))
	return nil
}
