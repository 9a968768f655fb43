package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"workshoplist/internal/catalog"
	"workshoplist/internal/eventbus"
	"workshoplist/internal/listing"
	"workshoplist/internal/pagination"
	"workshoplist/internal/search"
	"workshoplist/internal/ui/views"
)

type listOptions struct {
	query string
	page  int
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list [catalog]",
		Short: "Print one page of the catalog",
		Long: `Print one page of the catalog without starting the TUI.

With --query only workshops whose title contains the keyword, ignoring case,
are paginated.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "keyword titles must contain")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page to print, starting at 1")
	return cmd
}

func runList(cmd *cobra.Command, root *rootOptions, opts *listOptions, args []string) error {
	cfg, err := loadConfig(cmd, root, eventbus.NullBus{})
	if err != nil {
		return err
	}

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()

	path, err := catalogPath(root, cfg, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	workshops, err := catalog.Load(ctx, path)
	if err != nil {
		return err
	}

	list := listing.New(workshops)
	pager := pagination.New(list, pagerOptions(cfg), nil)
	pager.Init()

	filter := search.NewController(list, pager, search.InstantAnimator{}, nil)
	defer filter.Close()

	if opts.query != "" {
		if _, err := filter.Apply(ctx, opts.query); err != nil {
			return fmt.Errorf("filter %q: %w", opts.query, err)
		}
	}

	total := pager.TotalPages()
	if total > 0 && (opts.page < 1 || opts.page > total) {
		return fmt.Errorf("page %d out of range (1-%d)", opts.page, total)
	}
	pager.GoTo(opts.page - 1)

	printPage(cmd, pager.State(), list.Len(), opts.query)
	return nil
}

// printPage writes the active page followed by its navigation line
func printPage(cmd *cobra.Command, state pagination.State, catalogSize int, query string) {
	out := cmd.OutOrStdout()

	if state.Empty() {
		switch {
		case catalogSize == 0:
			fmt.Fprintln(out, "No workshops in the catalog.")
		case query != "":
			fmt.Fprintf(out, "No workshops match %q.\n", query)
		default:
			fmt.Fprintln(out, "No workshops to show.")
		}
		return
	}

	for _, item := range state.Items {
		w := item.Workshop
		if w.Date.IsZero() {
			fmt.Fprintf(out, "%-10s  %s\n", "", w.Label())
		} else {
			fmt.Fprintf(out, "%s  %s\n", w.Date.Format("2006-01-02"), w.Label())
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, views.PlainNav(state))
	fmt.Fprintln(out, views.RangeText(state))
}
