package main

import (
	"github.com/spf13/cobra"

	"gapi/internal/canonical"
	"gapi/internal/discovery"
)

func newExportCmd(a *app) *cobra.Command {
	var live bool
	cmd := &cobra.Command{
		Use:   "export <api>",
		Short: "Print an OpenAPI 3 description of an API",
		Long: `export prints the bound methods of <api> as an OpenAPI 3 document. With
--live the full live Discovery document is exported instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			var svc *canonical.Service
			if live {
				fetcher, release := a.newFetcher()
				defer release()
				svc, err = fetcher.FetchService(cmd.Context(), a.discoveryURL(e.Name, e.Version), e.Name)
				if err != nil {
					return err
				}
			} else {
				svc = e.Catalog()
			}
			doc, err := discovery.ToOpenAPI(svc)
			if err != nil {
				return err
			}
			return writeJSON(a.out, doc)
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "export the live Discovery document")
	return cmd
}
