package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/family-trip/backend/internal/llm"
	"github.com/pkordes/family-trip/backend/internal/sheet"
)

type parseOptions struct {
	apiKey  string
	model   string
	baseURL string
	asJSON  bool
}

func newParseCmd(root *rootOptions) *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Extract travel data from a confirmation and print the change preview",
		Long: "Send a pasted confirmation to the language model and print the\n" +
			"proposed spreadsheet changes with their CSV rows. With --json, print\n" +
			"only the extracted data, ready to pipe into `tripctl export`.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(string(text)) == "" {
				return errors.New("no confirmation text to parse")
			}

			apiKey := opts.apiKey
			if apiKey == "" {
				apiKey = envOr("OPENAI_API_KEY", "")
			}
			model := opts.model
			if model == "" {
				model = envOr("OPENAI_MODEL", llm.DefaultModel)
			}

			log := root.logger(cmd)
			log.Debug("parsing confirmation", "bytes", len(text), "model", model)
			data, err := llm.NewParser(apiKey, model, opts.baseURL, nil).Parse(cmd.Context(), string(text))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(data)
			}

			preview := sheet.GenerateChanges(data)
			fmt.Fprintln(out, strings.TrimRight(preview.Summary, "\n"))
			blocks := sheet.ChangesCSV(preview.Changes)
			names := make([]string, 0, len(blocks))
			for name := range blocks {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "\n# %s\n%s\n", name, blocks[name])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.apiKey, "openai-key", "", "OpenAI API key (default $OPENAI_API_KEY)")
	cmd.Flags().StringVar(&opts.model, "model", "", "Chat model (default $OPENAI_MODEL or "+llm.DefaultModel+")")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the extracted data as JSON")
	return cmd
}
