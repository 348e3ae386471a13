package status

import (
	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/helper"
	"github.com/spf13/cobra"
)

const statusTitle = "[LZROUTER - STATUS]"

// GetCommand returns the lzrouter status command
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <router>",
		Short: "Prints the locally recorded state of a router",
		Args:  cobra.ExactArgs(1),
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, args []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	rt, err := helper.NewRuntime(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	defer rt.Close()

	instance, err := rt.LoadInstance(args[0])
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(helper.NewInstanceResult(statusTitle, instance))
}
