package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/chaise/pkg/core"
)

func newRevCmd(g *globals) *cobra.Command {
	var kinds kindFlags

	cmd := &cobra.Command{
		Use:   "rev [id]",
		Short: "Print the current revision of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kinds.kind()
			if err != nil {
				return err
			}
			svc, err := g.service()
			if err != nil {
				return err
			}
			rev, err := svc.CurrentRevision(cmd.Context(), kind, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rev)
			return nil
		},
	}
	addKindFlags(cmd, &kinds)
	return cmd
}

func newRevCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revcmp [a] [b]",
		Short: "Compare two revisions",
		Long: `Print "<", "=" or ">" comparing two revision tokens.
Tokens are compared byte by byte: "10-x" sorts before "2-x".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := core.NewRevision(args[0]), core.NewRevision(args[1])
			sign := "="
			switch a.Compare(b) {
			case -1:
				sign = "<"
			case 1:
				sign = ">"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", a, sign, b)
			return nil
		},
	}
}
