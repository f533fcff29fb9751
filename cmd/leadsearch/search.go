package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"leadsearch-api/core/domain"
	"leadsearch-api/core/interfaces"
	"leadsearch-api/core/session"
	"leadsearch-api/infrastructure/http/retryable"
	"leadsearch-api/pkg/bootstrap"
	"leadsearch-api/pkg/client"
)

// maxCellWidth truncates long cells in the terminal table; CSV export is never truncated
const maxCellWidth = 60

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search one scope, or all of them, and print the rows",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := searchOptionsFromFlags(cmd)
		if err != nil {
			return err
		}
		opts.Query = strings.Join(args, " ")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts.Session.NewsHeaders = cfg.Search.NewsHeaders

		var searcher interfaces.Searcher
		if server, _ := cmd.Flags().GetString("server"); server != "" {
			httpCfg := retryable.DefaultConfig()
			httpCfg.Timeout = 90 * time.Second
			searcher = client.New(server, retryable.NewClient(httpCfg))
		} else {
			stack := bootstrap.New(cfg, newLogger(cfg))
			defer stack.Close()
			searcher = stack.Service
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return runSearch(ctx, searcher, opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("scope", "s", "news", "Scope to search: news, companies, people or all")
	searchCmd.Flags().IntP("limit", "n", 0, "Rows wanted (default 25, at most 50)")
	searchCmd.Flags().StringP("match", "m", "All", "Only show rows with this match status: All, Match, No Match, Neutral")
	searchCmd.Flags().Float64("min-significance", 0, "Hide rows below this significance (clamped to the scope's scale)")
	searchCmd.Flags().Float64("min-relevance", 0, "Hide rows below this relevance (clamped to the scope's scale)")
	searchCmd.Flags().StringSlice("regions", nil, "Regions for company searches")
	searchCmd.Flags().StringSlice("keywords", nil, "Extra keywords for company searches")
	searchCmd.Flags().String("company-hint", "", "Company name to narrow people searches")
	searchCmd.Flags().StringP("out", "o", "", "Write the filtered rows as CSV to this file")
	searchCmd.Flags().String("server", "", "Use a remote API server instead of searching in process (e.g. http://localhost:8000)")
}

type searchOptions struct {
	Query   string
	Scopes  []domain.Scope
	Session session.Options
	Filter  session.Filter
	Out     string
}

func searchOptionsFromFlags(cmd *cobra.Command) (searchOptions, error) {
	var opts searchOptions
	flags := cmd.Flags()

	scopeFlag, _ := flags.GetString("scope")
	scopes, err := parseScopes(scopeFlag)
	if err != nil {
		return opts, err
	}
	opts.Scopes = scopes

	matchFlag, _ := flags.GetString("match")
	match, err := domain.ParseMatchFilter(matchFlag)
	if err != nil {
		return opts, err
	}
	opts.Filter.Match = match
	opts.Filter.SignificanceMin, _ = flags.GetFloat64("min-significance")
	opts.Filter.RelevanceMin, _ = flags.GetFloat64("min-relevance")

	opts.Session.Limit, _ = flags.GetInt("limit")
	opts.Session.Regions, _ = flags.GetStringSlice("regions")
	opts.Session.Keywords, _ = flags.GetStringSlice("keywords")
	opts.Session.CompanyHint, _ = flags.GetString("company-hint")
	opts.Out, _ = flags.GetString("out")
	return opts, nil
}

// parseScopes expands "all" into every scope in display order
func parseScopes(s string) ([]domain.Scope, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return append([]domain.Scope(nil), domain.Scopes...), nil
	}
	scope, err := domain.ParseScope(s)
	if err != nil {
		return nil, err
	}
	return []domain.Scope{scope}, nil
}

// runSearch submits the query to every requested scope concurrently, then
// prints each scope's filtered table and optionally exports it.
// It fails only when the query is blank or every scope failed.
func runSearch(ctx context.Context, searcher interfaces.Searcher, opts searchOptions, out io.Writer) error {
	sess := session.New(searcher, opts.Session)
	defer sess.Close()
	sess.SetFilter(opts.Filter)

	g, gctx := errgroup.WithContext(ctx)
	for _, scope := range opts.Scopes {
		scope := scope
		g.Go(func() error {
			err := sess.SubmitScope(gctx, scope, opts.Query)
			if errors.Is(err, session.ErrEmptyQuery) {
				return err
			}
			// other failures are recorded in the scope state
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, scope := range opts.Scopes {
		sess.SetActive(scope)
		st := sess.State(scope)

		fmt.Fprintf(out, "== %s ==\n", scope)
		if st.Error != "" {
			failed++
			fmt.Fprintf(out, "error: %s\n\n", st.Error)
			continue
		}

		headers, records := sess.Table()
		if err := printTable(out, headers, records); err != nil {
			return err
		}
		if st.Meta != nil {
			fmt.Fprintf(out, "%d of %d rows shown (source: %s)\n", len(records), st.Meta.Returned, st.Meta.Source)
		}
		fmt.Fprintln(out)

		if opts.Out != "" {
			path := exportPath(opts.Out, scope, len(opts.Scopes) > 1)
			if err := exportFile(sess, path); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %s\n\n", path)
		}
	}

	if failed == len(opts.Scopes) {
		return fmt.Errorf("all %d searches failed", failed)
	}
	return nil
}

// exportPath inserts the scope before the extension when several scopes are exported
func exportPath(path string, scope domain.Scope, perScope bool) string {
	if !perScope {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + string(scope) + ext
}

func exportFile(sess *session.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := sess.Export(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printTable(out io.Writer, headers []string, records [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, record := range records {
		cells := make([]string, len(record))
		for i, c := range record {
			cells[i] = truncate(c, maxCellWidth)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
