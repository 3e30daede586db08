package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gapi/internal/catalog"
)

func newAPIsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apis",
		Short: "List the bound APIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable(a.out, "NAME", "VERSION", "METHODS", "TITLE")
			for _, e := range catalog.All() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Name, e.Version, len(e.Catalog().Operations), e.Title)
			}
			return tw.Flush()
		},
	}
}

func newMethodsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "methods <api>",
		Short: "List the bound methods of an API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			tw := newTable(a.out, "METHOD", "HTTP", "PATH", "REQUEST", "RESPONSE")
			for _, op := range e.Catalog().SortedOperations() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", op.ID, op.Method, op.Path, dash(op.RequestRef), dash(op.ResponseRef))
			}
			return tw.Flush()
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
