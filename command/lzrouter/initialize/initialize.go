package initialize

import (
	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/helper"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/spf13/cobra"
)

const initTitle = "[LZROUTER - INITIALIZE]"

// GetCommand returns the lzrouter init command
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init <router>",
		Short: "Wires an existing router to the mailbox, gas paymaster and security module of the host network",
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

	key, err := rt.Key()
	if err != nil {
		outputter.SetError(err)

		return
	}

	book, err := rt.AddressBook()
	if err != nil {
		outputter.SetError(err)

		return
	}

	instance, err := rt.LoadInstance(args[0])
	if err != nil {
		outputter.SetError(err)

		return
	}

	// bytecode is not needed to initialize an already deployed router
	coordinator := router.NewCoordinator(rt.Relayer, rt.Registry, book, nil, rt.Logger)

	if err := coordinator.Initialize(instance, key); err != nil {
		outputter.SetError(err)

		return
	}

	if err := rt.SaveInstance(instance); err != nil {
		outputter.SetError(err)

		return
	}

	rt.WriteTelemetry(outputter)
	outputter.SetCommandResult(helper.NewInstanceResult(initTitle, instance))
}
