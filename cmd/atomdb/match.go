package main

import (
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var linkType string
	var targets []string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Run a pattern query over --seed and print matching link ids",
		Long: `Resolves a pattern query against a store pre-populated from
--seed. --type may be "*" to match any link type. Each --target is
either a resolved atom handle or "*" for a wildcard position.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}

			matches, err := s.GetMatchedLinks(linkType, targets)
			if err != nil {
				return err
			}
			return printJSON(matches)
		},
	}

	cmd.Flags().StringVar(&linkType, "type", "", `link type, or "*" for any (required)`)
	cmd.Flags().StringSliceVar(&targets, "target", nil, `target handle, or "*" for a wildcard; repeatable`)
	cmd.MarkFlagRequired("type")

	return cmd
}
