package main

import (
	"github.com/spf13/cobra"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/fallback"
)

var fallbackCmd = &cobra.Command{
	Use:   "fallback <query>",
	Short: "Print the synthesized news rows used when real results run short",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		offset, _ := cmd.Flags().GetInt("offset")

		rows := fallback.NewGenerator().Generate(args[0], count, offset)

		records := make([][]string, 0, len(rows))
		for _, row := range rows {
			record := make([]string, 0, len(domain.DefaultNewsHeaders)+1)
			for _, h := range domain.DefaultNewsHeaders {
				record = append(record, domain.FormatCell(row.Value(h)))
			}
			records = append(records, append(record, row.URL))
		}
		headers := append(append([]string(nil), domain.DefaultNewsHeaders...), "URL")
		return printTable(cmd.OutOrStdout(), headers, records)
	},
}

func init() {
	rootCmd.AddCommand(fallbackCmd)
	fallbackCmd.Flags().IntP("count", "c", 10, "Number of rows")
	fallbackCmd.Flags().Int("offset", 0, "Index of the first row")
}
