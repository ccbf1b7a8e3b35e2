package command

import (
	"strings"

	commandHandler "flighttracker/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(
	NewCommand,
	commandHandler.NewTrackHandler,
	commandHandler.NewChatHandler,
)

type Command struct {
	trackCommandHandler *commandHandler.TrackHandler
	chatCommandHandler  *commandHandler.ChatHandler
}

// NewCommand .
func NewCommand(
	trackCommandHandler *commandHandler.TrackHandler,
	chatCommandHandler *commandHandler.ChatHandler,
) *Command {
	return &Command{
		trackCommandHandler: trackCommandHandler,
		chatCommandHandler:  chatCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:           "track <flight_number>",
			Short:         "track a flight once and print the provider payload",
			Args:          cobra.ExactArgs(1),
			SilenceUsage:  true,
			SilenceErrors: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				command, cleanup, err := newCmd()
				if err != nil {
					return err
				}
				defer cleanup()

				return command.trackCommandHandler.Track(cmd, args)
			},
		},
		&cobra.Command{
			Use:          "chat <message>",
			Short:        "ask the assistant about a flight",
			Long:         "Examples:\n  " + strings.Join(commandHandler.ExampleQueries, "\n  "),
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				command, cleanup, err := newCmd()
				if err != nil {
					return err
				}
				defer cleanup()

				return command.chatCommandHandler.Chat(cmd, args)
			},
		},
	)
}
