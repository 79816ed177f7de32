package main

import (
	"github.com/spf13/cobra"
)

func newAddLinkCmd() *cobra.Command {
	var specFile string

	cmd := &cobra.Command{
		Use:   "add-link",
		Short: "Add a link from a JSON spec and print its stored record",
		Long: `Reads a link spec (the §6 raw shape: {"type": ..., "targets":
[...]}, where each target is either a node object or a nested link
object) from --file, or stdin if --file is omitted, and adds it to a
store pre-populated from --seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}

			var spec map[string]any
			if err := readJSONArg(specFile, &spec); err != nil {
				return err
			}

			link, err := s.AddLinkMap(spec)
			if err != nil {
				return err
			}
			return printJSON(link)
		},
	}

	cmd.Flags().StringVar(&specFile, "file", "", "path to the link spec JSON (default: stdin)")
	return cmd
}
