package lzrouter

import (
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/deploy"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/enroll"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/helper"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/initialize"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/mapping"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/send"
	"github.com/PxGnome/hyperlane-interpreter/command/lzrouter/status"
	"github.com/spf13/cobra"
)

// GetCommand creates "lzrouter" helper command
func GetCommand() *cobra.Command {
	lzrouterCmd := &cobra.Command{
		Use:   "lzrouter",
		Short: "LayerZero compatible router commands, backed by the Hyperlane transport",
	}

	helper.RegisterFlags(lzrouterCmd)
	registerSubcommands(lzrouterCmd)

	return lzrouterCmd
}

func registerSubcommands(baseCmd *cobra.Command) {
	baseCmd.AddCommand(
		// lzrouter deploy
		deploy.GetCommand(),
		// lzrouter init
		initialize.GetCommand(),
		// lzrouter mapping
		mapping.GetCommand(),
		// lzrouter enroll
		enroll.GetCommand(),
		// lzrouter send
		send.GetCommand(),
		// lzrouter status
		status.GetCommand(),
	)
}
