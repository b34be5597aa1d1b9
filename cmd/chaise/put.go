package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aretw0/chaise/pkg/core"
	"github.com/aretw0/chaise/pkg/format"
)

func newPutCmd(g *globals) *cobra.Command {
	var (
		kinds  kindFlags
		input  string
		file   string
		rev    string
	)

	cmd := &cobra.Command{
		Use:   "put [id]",
		Short: "Create or update a document",
		Long: `Write a document body read from --file (or stdin with "-").
Without --rev the current revision is looked up first, so the write replaces
the latest version. Without an ID a random UUID is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serializer, err := format.ByName(input)
			if err != nil {
				return err
			}
			kind, err := kinds.kind()
			if err != nil {
				return err
			}

			var data []byte
			if file == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("failed to read body: %w", err)
			}
			body, err := serializer.Decode(data)
			if err != nil {
				return err
			}

			id := uuid.NewString()
			if len(args) == 1 {
				id = args[0]
			}

			svc, err := g.service()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			current := core.NewRevision(rev)
			if current.IsZero() {
				current, err = svc.CurrentRevision(ctx, kind, id)
				if err != nil && !errors.Is(err, core.ErrNotFound) {
					return err
				}
			}

			newRev, err := svc.SaveDocument(ctx, kind, core.RawDocument{
				ID:       id,
				Revision: current,
				Content:  body,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", id, newRev)
			return nil
		},
	}
	addKindFlags(cmd, &kinds)
	cmd.Flags().StringVarP(&input, "format", "f", "json", "Input format (json, yaml)")
	cmd.Flags().StringVar(&file, "file", "-", `Body file, "-" for stdin`)
	cmd.Flags().StringVar(&rev, "rev", "", "Revision to update (conditional write)")
	return cmd
}
