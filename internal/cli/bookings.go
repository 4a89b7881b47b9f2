package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings <user-id>",
		Short: "List a user's bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || userID < 1 {
				return fmt.Errorf("invalid user ID: %s", args[0])
			}

			list, err := newAPIClient().Bookings(userID)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(list)
			}
			return printBookings(list)
		},
	}
}
