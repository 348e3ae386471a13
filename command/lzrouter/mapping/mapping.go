package mapping

import (
	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/helper"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/spf13/cobra"
)

const mappingTitle = "[LZROUTER - DOMAIN MAPPING]"

// GetCommand returns the lzrouter mapping command
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mapping <router> <group>",
		Short: "Maps the LayerZero chain ids of the group members to their Hyperlane domains on a router",
		Args:  cobra.ExactArgs(2),
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

	key, err := rt.Key()
	if err != nil {
		outputter.SetError(err)

		return
	}

	instance, err := rt.LoadInstance(args[0])
	if err != nil {
		outputter.SetError(err)

		return
	}

	if err := router.NewMapper(rt.Relayer, rt.Registry, rt.Logger).MapGroup(instance, args[1], key); err != nil {
		outputter.SetError(err)

		return
	}

	if err := rt.SaveInstance(instance); err != nil {
		outputter.SetError(err)

		return
	}

	rt.WriteTelemetry(outputter)
	outputter.SetCommandResult(helper.NewInstanceResult(mappingTitle, instance))
}
