package cmd

import (
	"fmt"

	"github.com/corey/operator-gui/internal/adapters/web"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server status",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	client := web.NewClient(baseURL)
	if !client.Ping() {
		fmt.Fprintln(cmd.OutOrStdout(), "operator-gui is not running")
		return nil
	}

	health, err := client.Health()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatHealth(health))
	return nil
}
