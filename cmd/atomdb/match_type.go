package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newMatchTypeCmd() *cobra.Command {
	var linkType string
	var templateJSON string

	cmd := &cobra.Command{
		Use:   "match-type",
		Short: "List link ids by named type or composite-type template",
		Long: `With --type alone, lists every link id whose named type matches.
With --template (a JSON array of type symbols, e.g.
'["Inheritance", "Concept", "Concept"]'), lists every link id whose
composite-type signature matches the template instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore()
			if err != nil {
				return err
			}

			if templateJSON != "" {
				var template any
				if err := json.Unmarshal([]byte(templateJSON), &template); err != nil {
					return err
				}
				return printJSON(s.GetMatchedTypeTemplate(template))
			}

			return printJSON(s.GetMatchedType(linkType))
		},
	}

	cmd.Flags().StringVar(&linkType, "type", "", "link named type")
	cmd.Flags().StringVar(&templateJSON, "template", "", "JSON array composite-type template")

	return cmd
}
