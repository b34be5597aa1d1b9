package main

import (
	"encoding/json"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/chaise/pkg/core"
)

func newListCmd(g *globals) *cobra.Command {
	var (
		match    string
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Long: `List document IDs and revisions.
--match filters IDs with a glob where "/" separates segments, e.g. "_design/*" or "users/**".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if match != "" && !doublestar.ValidatePattern(match) {
				return fmt.Errorf("invalid pattern %q", match)
			}

			svc, err := g.service()
			if err != nil {
				return err
			}
			refs, err := svc.ListDocuments(cmd.Context())
			if err != nil {
				return err
			}

			selected := make([]core.DocumentRef, 0, len(refs))
			for _, ref := range refs {
				if match != "" {
					ok, err := doublestar.Match(match, ref.ID)
					if err != nil {
						return err
					}
					if !ok {
						continue
					}
				}
				selected = append(selected, ref)
			}

			out := cmd.OutOrStdout()
			if jsonMode {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(selected)
			}
			for _, ref := range selected {
				fmt.Fprintf(out, "%s\t%s\n", ref.ID, ref.Revision)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "Glob filter on document IDs")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output in JSON format")
	return cmd
}
