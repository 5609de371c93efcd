package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/gsheets"
	"github.com/pkordes/family-trip/backend/internal/service"
)

type fetchOptions struct {
	spreadsheetID string
	apiKey        string
	tab           string
	timeout       time.Duration
	valuesBaseURL string
	exportBaseURL string
}

func newFetchCmd(root *rootOptions) *cobra.Command {
	opts := &fetchOptions{}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Load the trip from the spreadsheet and print it as JSON",
		Long: "Load destinations, family members and todos and print the trip.\n" +
			"With --tab, print the raw rows of that tab instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.spreadsheetID == "" {
				opts.spreadsheetID = envOr("SPREADSHEET_ID", "")
			}
			if opts.apiKey == "" {
				opts.apiKey = envOr("GOOGLE_SHEETS_API_KEY", "")
			}
			if opts.spreadsheetID == "" {
				return errors.New("spreadsheet id required: pass --spreadsheet or set SPREADSHEET_ID")
			}

			client := &http.Client{Timeout: opts.timeout}
			reader := gsheets.NewReader(client, opts.spreadsheetID, opts.apiKey,
				gsheets.WithBaseURLs(opts.valuesBaseURL, opts.exportBaseURL))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if opts.tab != "" {
				rows, err := reader.FetchRows(cmd.Context(), opts.tab)
				if err != nil {
					return err
				}
				return enc.Encode(rows)
			}

			trips := service.NewTripService(reader, domain.FallbackTrip(), nil, root.logger(cmd))
			state := trips.Load(cmd.Context())
			if err := enc.Encode(state.Trip); err != nil {
				return err
			}
			if state.Error != "" {
				return errors.New(state.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.spreadsheetID, "spreadsheet", "s", "", "Spreadsheet id (default $SPREADSHEET_ID)")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Sheets API key (default $GOOGLE_SHEETS_API_KEY); without one the CSV export is used")
	cmd.Flags().StringVarP(&opts.tab, "tab", "t", "", "Print the raw rows of one tab")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "HTTP timeout per request")
	cmd.Flags().StringVar(&opts.valuesBaseURL, "values-url", gsheets.DefaultValuesBaseURL, "Sheets values API base URL")
	cmd.Flags().StringVar(&opts.exportBaseURL, "export-url", gsheets.DefaultExportBaseURL, "Spreadsheet CSV export base URL")
	_ = cmd.Flags().MarkHidden("values-url")
	_ = cmd.Flags().MarkHidden("export-url")
	return cmd
}
