package cmd

import (
	"fmt"

	"github.com/corey/operator-gui/internal/adapters/web"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the resolved command, page path, log level and port. No server required.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	running := web.NewClient(baseURL).Ping()
	fmt.Fprint(cmd.OutOrStdout(), formatConfig(cfg, running))
	return nil
}
