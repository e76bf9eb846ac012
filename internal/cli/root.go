package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the publisher CLI.
func NewRootCmd(run Runner, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "project-messaging-publisher",
		Short: "Publish messages to the project messaging queue",
		Long: `Publishes plain text messages and project events to the durable queue
configured through the RABBITMQ_* environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewTextCmd(run),
		NewProjectCmd(run),
	)

	return rootCmd
}
