package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hygrometer/internal/domain"
	"hygrometer/internal/geocode"
	"hygrometer/internal/ui"
	"hygrometer/internal/ui/regionlist"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search regions by name",
		Long: `Open the region search sheet, optionally with a search already running.

With --print the results of one page are written to stdout instead.`,
		Example: `  hygrometer search
  hygrometer search Gangnam
  hygrometer search --print --page 2 Seoul`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.TrimSpace(strings.Join(args, " "))
			printOnly, _ := cmd.Flags().GetBool("print")
			page, _ := cmd.Flags().GetInt("page")

			if printOnly && keyword == "" {
				return fmt.Errorf("a keyword is required with --print")
			}
			if page < 1 {
				return fmt.Errorf("page must be at least 1, got %d", page)
			}

			a, err := setupApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if printOnly {
				return printSearch(cmd.Context(), cmd.OutOrStdout(), a.searcher, keyword, page)
			}
			return a.runTUI(&ui.StartSheet{Mode: regionlist.SearchMode, Keyword: keyword})
		},
	}

	cmd.Flags().Bool("print", false, "Print results instead of opening the sheet")
	cmd.Flags().Int("page", 1, "Result page to print")
	return cmd
}

func printSearch(ctx context.Context, w io.Writer, searcher geocode.Searcher, keyword string, page int) error {
	regions, err := searcher.Search(ctx, keyword, page)
	if err != nil {
		return fmt.Errorf("search %q: %w", keyword, err)
	}
	if len(regions) == 0 {
		fmt.Fprintln(w, regionlist.NoSearchResultsMessage)
		return nil
	}
	printRegions(w, regions)
	return nil
}

func printRegions(w io.Writer, regions []domain.Region) {
	for _, r := range regions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.DisplayAddress(), r.Coordinate)
	}
}
