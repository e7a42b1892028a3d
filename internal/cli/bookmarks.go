package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hygrometer/internal/bookmarks"
	"hygrometer/internal/ui"
	"hygrometer/internal/ui/regionlist"
)

func newBookmarksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmarks",
		Short: "Open the bookmarked regions sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.runTUI(&ui.StartSheet{Mode: regionlist.BookmarkMode})
		},
	}
}

func newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage bookmarked regions",
	}
	cmd.AddCommand(newBookmarkListCmd())
	cmd.AddCommand(newBookmarkAddCmd())
	cmd.AddCommand(newBookmarkRemoveCmd())
	return cmd
}

func newBookmarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List bookmarked regions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			regions := a.store.Bookmarks()
			if len(regions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), regionlist.NoBookmarksMessage)
				return nil
			}
			printRegions(cmd.OutOrStdout(), regions)
			return nil
		},
	}
}

func newBookmarkAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <keyword>",
		Short: "Bookmark the best search result for keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.TrimSpace(strings.Join(args, " "))
			index, _ := cmd.Flags().GetInt("result")
			if keyword == "" {
				return fmt.Errorf("keyword is empty")
			}
			if index < 0 {
				return fmt.Errorf("result must not be negative, got %d", index)
			}

			a, err := setupApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			page := index/regionlist.PageSize + 1
			regions, err := a.searcher.Search(cmd.Context(), keyword, page)
			if err != nil {
				return fmt.Errorf("search %q: %w", keyword, err)
			}
			offset := index % regionlist.PageSize
			if offset >= len(regions) {
				return fmt.Errorf("no result %d for %q", index, keyword)
			}

			region := regions[offset]
			if err := a.store.Add(cmd.Context(), region); err != nil {
				return fmt.Errorf("bookmark %s: %w", region.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %s (%s)\n", region.Name, region.DisplayAddress())
			return nil
		},
	}
	cmd.Flags().Int("result", 0, "Zero-based index of the search result to bookmark")
	return cmd
}

func newBookmarkRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <query>",
		Aliases: []string{"rm"},
		Short:   "Remove the bookmark best matching query",
		Long:    `Remove a bookmark by key, or by the closest fuzzy match on name and address.`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))

			a, err := setupApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			matches := bookmarks.Find(a.store, query)
			if len(matches) == 0 {
				return fmt.Errorf("no bookmark matches %q", query)
			}

			region := matches[0]
			if err := a.store.Remove(cmd.Context(), region.Key()); err != nil {
				return fmt.Errorf("remove %s: %w", region.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s)\n", region.Name, region.DisplayAddress())
			return nil
		},
	}
}
