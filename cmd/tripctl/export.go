package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/sheet"
)

type exportOptions struct {
	dir  string
	date string
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write manual-import CSV files from extracted travel data",
		Long: "Read extracted travel data as JSON (the output of `tripctl parse --json`)\n" +
			"and write one <type>_<date>.csv file per populated block.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var data domain.ParsedTravelData
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("decode travel data: %w", err)
			}

			now := time.Now()
			if opts.date != "" {
				if now, err = time.Parse(time.DateOnly, opts.date); err != nil {
					return fmt.Errorf("invalid --date %q: %w", opts.date, err)
				}
			}

			files, err := sheet.ExportFiles(data, now)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "nothing to export")
				return nil
			}
			if err := os.MkdirAll(opts.dir, 0o755); err != nil {
				return err
			}
			for _, f := range files {
				path := filepath.Join(opts.dir, f.Filename)
				if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.dir, "dir", "o", ".", "Directory to write the CSV files into")
	cmd.Flags().StringVar(&opts.date, "date", "", "Date used in file names, YYYY-MM-DD (default today)")
	return cmd
}
