package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/architeacher/svc-project-messaging/internal/runtime"
	"github.com/architeacher/svc-project-messaging/internal/usecases"
	"github.com/architeacher/svc-project-messaging/internal/usecases/commands"
)

// Runner executes fn against a publisher application and releases it afterwards.
type Runner func(fn runtime.PublishFunc) error

// NewTextCmd publishes its arguments as one plain text message.
func NewTextCmd(run Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "text MESSAGE...",
		Short: "Publish a plain text message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, app *usecases.PublisherApplication) error {
				result, err := app.Commands.PublishTextHandler.Handle(ctx, commands.PublishTextCommand{
					Message: strings.Join(args, " "),
				})
				if err != nil {
					return err
				}

				return printResult(cmd.OutOrStdout(), result)
			})
		},
	}
}

// NewProjectCmd groups the project event commands.
func NewProjectCmd(run Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Publish project events",
	}

	cmd.AddCommand(
		newProjectEventCmd(run, domain.ProjectCreated, "created"),
		newProjectEventCmd(run, domain.ProjectUpdated, "updated"),
		newProjectEventCmd(run, domain.ProjectDeleted, "deleted"),
	)

	return cmd
}

func newProjectEventCmd(run Runner, eventType domain.ProjectEventType, use string) *cobra.Command {
	var projectID string
	var name string

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Publish a %s event", eventType),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, app *usecases.PublisherApplication) error {
				result, err := app.Commands.PublishProjectEventHandler.Handle(ctx, commands.PublishProjectEventCommand{
					Type:      eventType,
					ProjectID: projectID,
					Name:      name,
				})
				if err != nil {
					return err
				}

				return printResult(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().StringVar(&projectID, "id", "", "Project ID")
	cmd.Flags().StringVar(&name, "name", "", "Project name, required for created events")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func printResult(out io.Writer, result *domain.PublishResult) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(result)
}
