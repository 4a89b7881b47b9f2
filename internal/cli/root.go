// Package cli defines the cobra command tree for stayfinder.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/stayfinder/internal/client"
)

var (
	flagFormat string
	flagServer string
	flagConfig string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stayfinder",
		Short:         "Browse and save vacation rentals",
		Long:          "Run the stayfinder API server, or browse listings, manage the wishlist and check bookings against a running server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "server URL (default: $SF_SERVER_URL, CLI config, or http://localhost:8080)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "server config file (default: ~/.config/stayfinder/config.yaml)")

	root.AddCommand(
		newServeCmd(),
		newListCmd(),
		newShowCmd(),
		newCategoriesCmd(),
		newWishlistCmd(),
		newBookingsCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the stayfinder API.
func newAPIClient() *client.Client {
	return client.New(getServerURL(), getToken())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
