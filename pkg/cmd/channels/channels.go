package channels

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/channel"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/cmd/util"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/config"
)

func NewChannelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "commands to query the channel API",
	}
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newLoginCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "lists the available channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			util.SetupLogger()
			channels, err := channel.NewClient(config.APIURL).List(cmd.Context())
			if err != nil {
				return err
			}
			channel.WriteTable(os.Stdout, channels)
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <channel-id>",
		Short: "verifies the password of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			util.SetupLogger()
			if err := channel.NewClient(config.APIURL).Login(
				cmd.Context(), args[0], config.Password); err != nil {
				log.Error("login failed", log.String("channel", args[0]), log.ErrorField(err))
				return err
			}
			fmt.Fprintf(os.Stdout, "password for channel %s accepted\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&config.Password,
		"password",
		"",
		"password of the channel")
	return cmd
}
