package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/stayfinder/internal/client"
)

func newListCmd() *cobra.Command {
	var opts client.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Long:  "List catalog properties, optionally filtered by a search query or a category. The search query wins when both are given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "match title, location or description")
	cmd.Flags().StringVar(&opts.Category, "category", "", "category token or label (see 'stayfinder categories')")

	return cmd
}

func runList(opts client.ListOptions) error {
	props, err := newAPIClient().ListProperties(opts)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(props)
	}

	return printPropertyTable(props)
}
