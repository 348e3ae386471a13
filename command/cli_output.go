package command

import (
	"fmt"
	"io"
)

type CLIOutput struct {
	commonOutputFormatter
}

func newCLIOutput(stdout, stderr io.Writer) *CLIOutput {
	return &CLIOutput{commonOutputFormatter{stdout: stdout, stderr: stderr}}
}

func (cli *CLIOutput) WriteOutput() {
	if cli.errorOutput != nil {
		_, _ = fmt.Fprintln(cli.stderr, cli.getErrorOutput())

		return
	}

	if cli.commandOutput != nil {
		_, _ = fmt.Fprintln(cli.stdout, cli.getCommandOutput())
	}
}

func (cli *CLIOutput) WriteCommandResult(result CommandResult) {
	_, _ = fmt.Fprintln(cli.stdout, result.GetOutput())
}

func (cli *CLIOutput) getErrorOutput() string {
	return cli.errorOutput.Error()
}

func (cli *CLIOutput) getCommandOutput() string {
	return cli.commandOutput.GetOutput()
}
