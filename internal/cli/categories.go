package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List browse categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := newAPIClient().Categories()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cats)
			}
			for _, c := range cats {
				fmt.Printf("%-15s %s\n", c.ID, c.Label)
			}
			return nil
		},
	}
}
