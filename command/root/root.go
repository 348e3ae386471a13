package root

import (
	"fmt"
	"os"

	"github.com/PxGnome/hyperlane-interpreter/command/helper"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter"
	"github.com/PxGnome/hyperlane-interpreter/command/version"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Short: "Deploys and operates LayerZero compatible routers on top of the Hyperlane transport",
		},
	}

	helper.RegisterJSONOutputFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		lzrouter.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
