package enroll

import (
	"fmt"

	"github.com/PxGnome/hyperlane-interpreter/addressbook"
	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/helper"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/spf13/cobra"
)

const enrollTitle = "[LZROUTER - ENROLL REMOTE ROUTER]"

// GetCommand returns the lzrouter enroll command
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <origin-router> <destination-network> <remote-router>",
		Short: "Trusts the remote router of the destination network on the origin router",
		Args:  cobra.ExactArgs(3),
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, args []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	remote, err := addressbook.ParseAddress(args[2])
	if err != nil {
		outputter.SetError(fmt.Errorf("remote router address: %w", err))

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

	origin, err := rt.LoadInstance(args[0])
	if err != nil {
		outputter.SetError(err)

		return
	}

	if err := router.NewEnroller(rt.Relayer, rt.Registry, rt.Logger).Enroll(origin, args[1], remote, key); err != nil {
		outputter.SetError(err)

		return
	}

	if err := rt.SaveInstance(origin); err != nil {
		outputter.SetError(err)

		return
	}

	rt.WriteTelemetry(outputter)
	outputter.SetCommandResult(helper.NewInstanceResult(enrollTitle, origin))
}
