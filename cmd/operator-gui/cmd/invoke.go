package cmd

import (
	"fmt"

	"github.com/corey/operator-gui/internal/adapters/web"
	"github.com/corey/operator-gui/internal/ports"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Ask the running server to run operator-cli start",
	Long:  "Posts to /start and waits for the server to finish. The result is only in the server log.",
	RunE:  invokeRunner(ports.ActionStart),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Ask the running server to run operator-cli stop",
	Long:  "Posts to /stop and waits for the server to finish. The result is only in the server log.",
	RunE:  invokeRunner(ports.ActionStop),
}

func invokeRunner(action ports.Action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client := web.NewClient(baseURL)
		if !client.Ping() {
			return fmt.Errorf("operator-gui is not running at %s", baseURL)
		}
		if err := client.Invoke(action); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s requested; see the server log for the result\n", action)
		return nil
	}
}
