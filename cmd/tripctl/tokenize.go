package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pkordes/family-trip/backend/internal/sheet"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Split a spreadsheet CSV export into rows and print them as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sheet.Tokenize(string(data)))
		},
	}
}
