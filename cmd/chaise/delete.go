package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/chaise/pkg/core"
)

func newDeleteCmd(g *globals) *cobra.Command {
	var (
		kinds kindFlags
		rev   string
	)

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a document",
		Long:  `Delete a document. Without --rev the current revision is deleted.`,
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
			ctx := cmd.Context()

			target := core.NewRevision(rev)
			if target.IsZero() {
				target, err = svc.CurrentRevision(ctx, kind, args[0])
				if err != nil {
					return err
				}
			}

			tombstone, err := svc.DeleteDocument(ctx, kind, args[0], target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], tombstone)
			return nil
		},
	}
	addKindFlags(cmd, &kinds)
	cmd.Flags().StringVar(&rev, "rev", "", "Revision to delete")
	return cmd
}
