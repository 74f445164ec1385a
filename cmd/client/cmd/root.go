package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"safetrip/cmd/client/cmd/alerts"
	"safetrip/cmd/client/cmd/auth"
	"safetrip/cmd/client/cmd/contacts"
	"safetrip/cmd/client/cmd/expense"
	"safetrip/cmd/client/cmd/lost"
	"safetrip/cmd/client/cmd/offline"
	"safetrip/cmd/client/cmd/plan"
	"safetrip/cmd/client/cmd/sos"
	"safetrip/cmd/client/cmd/types"
	"safetrip/internal/app/client"
	"safetrip/internal/app/client/config"
	"safetrip/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	noColor   bool
	serverURL string

	app *client.App
)

var rootCmd = &cobra.Command{
	Use:   "safetrip",
	Short: "SafeTrip: travel safety from the terminal",
	Long: `SafeTrip keeps travelers safe on the road.

Plan trips with AI, check local safety news, report lost items,
manage emergency contacts and send an SOS alert by email.
Recent answers are kept offline for when the network drops.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if noColor {
		color.NoColor = true
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log := newLogger(cfg.Env, level)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, types.ClientAppKey, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

// newLogger writes to stderr so command output stays clean.
func newLogger(env, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return logger.New(env)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.safetrip/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server address, host:port")

	rootCmd.AddCommand(
		auth.RegisterCmd,
		auth.LoginCmd,
		auth.LogoutCmd,
		lost.LostCmd,
		contacts.ContactsCmd,
		sos.SOSCmd,
		plan.PlanCmd,
		alerts.AlertsCmd,
		expense.ExpenseCmd,
		offline.OfflineCmd,
	)
}
