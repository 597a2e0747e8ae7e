package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vokinneberg/vidya-vriksha/internal/knowledge"
)

var validateCmd = &cobra.Command{
	Use:   "validate [corpus]",
	Short: "Check an offline knowledge base (.yaml or .db); the built-in corpus when omitted",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	store, err := knowledge.Load(cmd.Context(), path)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LANGUAGE\tRECORDS")
	for _, lang := range store.Languages() {
		fmt.Fprintf(w, "%s\t%d\n", lang, len(store.Records(lang)))
	}
	fmt.Fprintf(w, "total\t%d\n", store.Len())
	return w.Flush()
}
