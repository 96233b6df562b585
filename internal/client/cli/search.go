package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Search(ctx context.Context, args []string) error {
	filters, err := parseFilters(args)
	if err != nil {
		return err
	}

	a.lastFilters = &filters
	a.lastPage = 0
	a.lastResult = nil
	return a.runSearch(ctx)
}

// Next fetches the following page of the last search.
func (a *App) Next(ctx context.Context) error {
	if a.lastFilters == nil {
		return usageError{usage: "search first, then next"}
	}
	if a.lastResult != nil && !a.lastResult.HasMore {
		fmt.Fprintln(a.out, "No more results.")
		return nil
	}
	return a.runSearch(ctx)
}

// runSearch fetches the page after lastPage. lastPage only advances once
// the fetch succeeds, so a failed page is retried by the next call.
func (a *App) runSearch(ctx context.Context) error {
	res, err := a.searchService.Search(ctx, *a.lastFilters, a.lastPage+1)
	if err != nil {
		return err
	}
	a.lastPage++
	a.lastResult = res

	if len(res.Items) == 0 {
		fmt.Fprintln(a.out, "No cards found.")
		return nil
	}

	for _, c := range res.Items {
		fmt.Fprintln(a.out, cardLine(c))
	}

	more := ""
	if res.HasMore {
		more = " (type 'next' for more)"
	}
	fmt.Fprintf(a.out, "Page %d, %d of %d cards%s\n", a.lastPage, len(res.Items), res.TotalCount, more)
	return nil
}

func (a *App) Card(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError{usage: "card <id>"}
	}
	c, err := a.searchService.GetCard(ctx, args[0])
	if err != nil {
		return err
	}
	printCardDetails(a.out, *c)
	return nil
}

func (a *App) Named(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError{usage: "named <exact card name>"}
	}
	c, err := a.searchService.Named(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printCardDetails(a.out, *c)
	return nil
}

func (a *App) Random(ctx context.Context) error {
	c, err := a.searchService.Random(ctx)
	if err != nil {
		return err
	}
	printCardDetails(a.out, *c)
	return nil
}

func (a *App) Complete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError{usage: "complete <prefix>"}
	}
	names, err := a.searchService.Autocomplete(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No suggestions.")
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(a.out, n)
	}
	return nil
}

func (a *App) Sets(ctx context.Context) error {
	sets, err := a.searchService.Sets(ctx)
	if err != nil {
		return err
	}
	for _, s := range sets {
		fmt.Fprintf(a.out, "%-6s %s (%s, %d cards)\n", strings.ToUpper(s.Code), s.Name, s.ReleasedAt, s.CardCount)
	}
	return nil
}
