package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and login status",
		Long:  "Tests the connection to the server and checks whether the stored session token is still valid.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	c := newAPIClient()

	fmt.Printf("Server:  %s\n", getServerURL())

	h, err := c.Health()
	if err != nil {
		fmt.Printf("Status:  ✗ cannot reach server (%v)\n", err)
		return nil
	}
	fmt.Printf("Backend: %s\n", h.Backend)

	if getToken() == "" {
		fmt.Println("Login:   not logged in")
		fmt.Println("\nRun 'stayfinder login --email you@example.com' to log in.")
		return nil
	}

	u, err := c.Me()
	if err != nil {
		fmt.Printf("Login:   ✗ %v\n", err)
		fmt.Println("\nRun 'stayfinder login' to log in again.")
		return nil
	}

	fmt.Printf("Login:   ✓ %s\n", u.Email)
	return nil
}
