package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gapi/internal/catalog"
	"gapi/internal/discovery"
)

// maxConcurrentFetches bounds parallel Discovery downloads.
const maxConcurrentFetches = 4

type checkResult struct {
	API    string            `json:"api"`
	Drifts []discovery.Drift `json:"drifts"`
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		asJSON      bool
		showUnbound bool
	)
	cmd := &cobra.Command{
		Use:   "check [api...]",
		Short: "Compare the bindings with the live Discovery documents",
		Long: `check downloads the Discovery document of each bound API (all of them when
none is named) and reports bound methods whose verb, path or schemas no longer
match. It exits with status 2 when any bound method has drifted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.All()
			if len(args) > 0 {
				entries = entries[:0:0]
				for _, name := range args {
					e, err := a.lookup(name)
					if err != nil {
						return err
					}
					entries = append(entries, e)
				}
			}
			results, err := a.check(cmd.Context(), entries)
			if err != nil {
				return err
			}
			return a.reportCheck(results, asJSON, showUnbound)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print drift as JSON")
	cmd.Flags().BoolVar(&showUnbound, "unbound", false, "also list upstream methods without a binding")
	return cmd
}

func (a *app) check(ctx context.Context, entries []catalog.Entry) ([]checkResult, error) {
	fetcher, release := a.newFetcher()
	defer release()

	results := make([]checkResult, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, e := range entries {
		g.Go(func() error {
			url := a.discoveryURL(e.Name, e.Version)
			live, err := fetcher.FetchService(ctx, url, e.Name)
			if err != nil {
				return fmt.Errorf("%s: %w", e.Name, err)
			}
			results[i] = checkResult{API: e.Name, Drifts: discovery.Diff(e.Catalog(), live)}
			a.logger.Debug("checked", "api", e.Name, "drifts", len(results[i].Drifts))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *app) reportCheck(results []checkResult, asJSON, showUnbound bool) error {
	breaking := false
	for i := range results {
		if discovery.HasBreaking(results[i].Drifts) {
			breaking = true
		}
		if !showUnbound {
			kept := results[i].Drifts[:0:0]
			for _, d := range results[i].Drifts {
				if d.Breaking() {
					kept = append(kept, d)
				}
			}
			results[i].Drifts = kept
		}
	}

	if asJSON {
		if err := writeJSON(a.out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if len(r.Drifts) == 0 {
				fmt.Fprintf(a.out, "%s: ok\n", r.API)
				continue
			}
			for _, d := range r.Drifts {
				fmt.Fprintln(a.out, d.String())
			}
		}
	}
	if breaking {
		return errDrift
	}
	return nil
}
