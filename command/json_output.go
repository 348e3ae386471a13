package command

import (
	"encoding/json"
	"fmt"
	"io"
)

type JSONOutput struct {
	commonOutputFormatter
}

func newJSONOutput(stdout, stderr io.Writer) *JSONOutput {
	return &JSONOutput{commonOutputFormatter{stdout: stdout, stderr: stderr}}
}

func (jo *JSONOutput) WriteOutput() {
	if jo.errorOutput != nil {
		_, _ = fmt.Fprintln(jo.stderr, jo.getErrorOutput())

		return
	}

	if jo.commandOutput != nil {
		_, _ = fmt.Fprintln(jo.stdout, jo.getCommandOutput())
	}
}

// WriteCommandResult emits one JSON document per intermediate result
func (jo *JSONOutput) WriteCommandResult(result CommandResult) {
	_, _ = fmt.Fprintln(jo.stdout, marshalJSONToString(result))
}

func (jo *JSONOutput) getErrorOutput() string {
	return marshalJSONToString(
		struct {
			Err string `json:"error"`
		}{
			Err: jo.errorOutput.Error(),
		},
	)
}

func (jo *JSONOutput) getCommandOutput() string {
	return marshalJSONToString(jo.commandOutput)
}

func marshalJSONToString(input interface{}) string {
	bytes, err := json.Marshal(input)
	if err != nil {
		return err.Error()
	}

	return string(bytes)
}
