package main

import (
	"github.com/spf13/cobra"
)

func newGetNodeCmd() *cobra.Command {
	var nodeType, name string

	cmd := &cobra.Command{
		Use:   "get-node",
		Short: "Resolve a (type, name) pair against --seed and print the node",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}

			handle, err := s.GetNodeHandle(nodeType, name)
			if err != nil {
				return err
			}
			node, err := s.GetNode(handle)
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
