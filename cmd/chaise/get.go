package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/chaise/pkg/format"
)

func newGetCmd(g *globals) *cobra.Command {
	var (
		kinds  kindFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Read a document",
		Long:  `Read a document by its ID. Outputs indented JSON by default, or YAML with --format yaml.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serializer, err := format.ByName(output)
			if err != nil {
				return err
			}
			kind, err := kinds.kind()
			if err != nil {
				return err
			}
			svc, err := g.service()
			if err != nil {
				return err
			}

			doc, err := svc.GetDocument(cmd.Context(), kind, args[0])
			if err != nil {
				return err
			}

			data, err := serializer.Encode(doc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addKindFlags(cmd, &kinds)
	cmd.Flags().StringVarP(&output, "format", "f", "json", "Output format (json, yaml)")
	return cmd
}
