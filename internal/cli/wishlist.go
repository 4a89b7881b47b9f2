package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show saved properties",
		Long:  "Show the wishlist. Use the add and remove subcommands to change it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWishlist()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id>",
			Short: "Save a property",
			Args:  cobra.ExactArgs(1),
			RunE:  runWishlistAdd,
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Unsave a property",
			Args:  cobra.ExactArgs(1),
			RunE:  runWishlistRemove,
		},
	)

	return cmd
}

func runWishlist() error {
	items, err := newAPIClient().Wishlist()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(items)
	}

	printWishlist(items)
	return nil
}

func runWishlistAdd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	it, err := newAPIClient().AddToWishlist(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(it)
	}

	fmt.Printf("✓ Property #%d saved.\n", it.PropertyID)
	return nil
}

func runWishlistRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := newAPIClient().RemoveFromWishlist(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"removed": true, "property_id": id})
	}

	fmt.Printf("✓ Property #%d removed from wishlist.\n", id)
	return nil
}
