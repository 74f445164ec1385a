// Package types holds what subcommands share with the root command.
package types

import (
	"errors"

	"github.com/spf13/cobra"

	"safetrip/internal/app/client"
)

type contextKey string

const ClientAppKey contextKey = "app"

// App returns the client set up by the root command.
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, errors.New("client is not initialized")
	}
	return app, nil
}
