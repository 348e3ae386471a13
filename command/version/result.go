package version

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PxGnome/hyperlane-interpreter/command/helper"
)

type VersionResult struct {
	Version   string   `json:"version"`
	Commit    string   `json:"commit"`
	BuildTime string   `json:"buildTime"`
	Networks  int      `json:"networks"`
	Groups    []string `json:"groups"`
}

func (r *VersionResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[LZROUTER VERSION]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Release|%s", r.Version),
		fmt.Sprintf("Commit|%s", r.Commit),
		fmt.Sprintf("Built at|%s", r.BuildTime),
		fmt.Sprintf("Bundled networks|%d", r.Networks),
		fmt.Sprintf("Bundled groups|%s", strings.Join(r.Groups, ", ")),
	}))

	return buffer.String()
}
