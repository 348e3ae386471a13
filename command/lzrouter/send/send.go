package send

import (
	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/helper"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/spf13/cobra"
)

var params sendParams

// GetCommand returns the lzrouter send command
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <origin-router> <destination-network> <destination-address> <message>",
		Short: "Sends a message through the origin router, paying the quoted relay fee",
		Args:  cobra.ExactArgs(4),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return params.validateFlags()
		},
		Run: runCommand,
	}

	cmd.Flags().StringVar(
		&params.encoding,
		encodingFlag,
		string(router.EncodingUTF8),
		"how the message is turned into payload bytes (utf8 or hex)",
	)

	return cmd
}

func runCommand(cmd *cobra.Command, args []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	req, err := params.request(args)
	if err != nil {
		outputter.SetError(err)

		return
	}

	rt, err := helper.NewRuntime(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	defer rt.Close()

	key, err := rt.Key()
	if err != nil {
		outputter.SetError(err)

		return
	}

	receipt, err := router.NewDispatcher(rt.Relayer, rt.Registry, rt.Logger).Send(req, key)
	if err != nil {
		outputter.SetError(err)

		return
	}

	rt.WriteTelemetry(outputter)
	outputter.SetCommandResult(newSendResult(req, receipt))
}
