package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/aretw0/chaise/pkg/core"
)

func newURICmd(g *globals) *cobra.Command {
	var kinds kindFlags

	cmd := &cobra.Command{
		Use:   "uri [id]",
		Short: "Print the address of a document",
		Long:  `Print the URL a document operation would use. No request is sent.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kinds.kind()
			if err != nil {
				return err
			}
			if err := g.resolve(); err != nil {
				return err
			}
			base, err := url.Parse(g.url)
			if err != nil {
				return fmt.Errorf("invalid url: %w", err)
			}
			u := core.BuildURI(base, g.database, args[0], kind)
			fmt.Fprintln(cmd.OutOrStdout(), u.Redacted())
			return nil
		},
	}
	addKindFlags(cmd, &kinds)
	return cmd
}
