package main

import (
	"github.com/spf13/cobra"
)

func newAddNodeCmd() *cobra.Command {
	var nodeType, name string

	cmd := &cobra.Command{
		Use:   "add-node",
		Short: "Add a node and print its stored record",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}

			node, err := s.AddNode(map[string]any{"type": nodeType, "name": name})
			if err != nil {
				return err
			}
			return printJSON(node)
		},
	}

	cmd.Flags().StringVar(&nodeType, "type", "", "node type (required)")
	cmd.Flags().StringVar(&name, "name", "", "node name (required)")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("name")

	return cmd
}
