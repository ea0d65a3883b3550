package cmd

import (
	"fmt"

	"github.com/corey/operator-gui/internal/app"
	"github.com/corey/operator-gui/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "operator-gui",
	Short: "Web control page for operator-cli",
	Long: "Serves a control page on port 8080. Its start and stop buttons run " +
		"`operator-cli start` and `operator-cli stop` on this host.",
	SilenceUsage: true,
	RunE:         runServe,
}

var (
	flagEnvFile  string
	flagCommand  string
	flagPage     string
	flagLogLevel string
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagEnvFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")
	pf.StringVar(&flagCommand, "command", "", "operator executable (default $OPERATOR_GUI_COMMAND or operator-cli)")
	pf.StringVar(&flagPage, "page", "", "HTML page served at / (default $OPERATOR_GUI_PAGE or <install dir>/frontend/index.html)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level (default $OPERATOR_GUI_LOG_LEVEL or info)")

	rootCmd.Version = version.String()
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
}

// loadConfig resolves env/.env config, then applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.LoadConfig(flagEnvFile)
	if err != nil {
		return app.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("command") {
		cfg.Command = flagCommand
	}
	if flags.Changed("page") {
		cfg.PagePath = flagPage
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// baseURL is the local address of a running server.
var baseURL = fmt.Sprintf("http://localhost:%d", app.DefaultPort)
