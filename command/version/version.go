package version

import (
	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/PxGnome/hyperlane-interpreter/domains"
	"github.com/PxGnome/hyperlane-interpreter/version"
	"github.com/spf13/cobra"
)

// GetCommand returns the version command, which also reports the bundled domain registry
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the lzrouter build and its bundled domain registry",
		Args:  cobra.NoArgs,
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	registry, err := domains.DefaultRegistry()
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&VersionResult{
		Version:   version.Version,
		Commit:    version.Commit,
		BuildTime: version.BuildTime,
		Networks:  len(registry.Networks()),
		Groups:    registry.Groups(),
	})
}
