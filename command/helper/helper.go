package helper

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/hashicorp/go-hclog"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	"github.com/umbracle/ethgo"
	"github.com/umbracle/ethgo/wallet"
)

// ErrNoPrivateKey is returned when a state changing command runs without a signer
var ErrNoPrivateKey = errors.New("private key is not set (use --private-key or PRIVATE_KEY)")

// FormatList formats a list, using a specific blank value replacement
func FormatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"

	return columnize.Format(in, columnConf)
}

// FormatKV formats key value pairs:
//
// Key = Value
//
// Key = <none>
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

// RegisterJSONOutputFlag registers the --json output setting for all child commands
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// DecodePrivateKey decodes a hex encoded (optionally 0x prefixed) private key
func DecodePrivateKey(rawKey string) (ethgo.Key, error) {
	if rawKey == "" {
		return nil, ErrNoPrivateKey
	}

	dec, err := hex.DecodeString(strings.TrimPrefix(rawKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	key, err := wallet.NewWalletFromPrivKey(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize key from provided private key: %w", err)
	}

	return key, nil
}

// NewLogger creates the process logger
func NewLogger(name, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
	})
}
