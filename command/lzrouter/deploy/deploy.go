package deploy

import (
	"fmt"

	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/helper"
	"github.com/PxGnome/hyperlane-interpreter/router"
	"github.com/spf13/cobra"
)

const deployTitle = "[LZROUTER - DEPLOY]"

// GetCommand returns the lzrouter deploy command
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy <group>",
		Short: "Deploys a router on the host network, initializes it and maps the domains of the group",
		Args:  cobra.ExactArgs(1),
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, args []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	group := args[0]

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

	artifact, err := rt.Artifact()
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.WriteCommandResult(&helper.MessageResult{
		Message: fmt.Sprintf("%s started... Host network %s, group %s.", deployTitle, rt.Host.Name, group),
	})

	workflow := router.NewWorkflow(
		router.NewCoordinator(rt.Relayer, rt.Registry, book, artifact, rt.Logger),
		router.NewMapper(rt.Relayer, rt.Registry, rt.Logger),
		rt.Registry, rt.Store, rt.Logger,
	)

	instance, err := workflow.Setup(rt.Host.Name, group, key)
	if err != nil {
		if instance != nil {
			outputter.WriteCommandResult(helper.NewInstanceResult(deployTitle, instance))
			err = fmt.Errorf("%w (resume with the init / mapping commands for router %s)", err, instance.Address)
		}

		outputter.SetError(err)

		return
	}

	rt.WriteTelemetry(outputter)
	outputter.SetCommandResult(helper.NewInstanceResult(deployTitle, instance))
}
