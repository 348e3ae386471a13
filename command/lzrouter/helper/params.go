package helper

import (
	"github.com/PxGnome/hyperlane-interpreter/command"
	"github.com/PxGnome/hyperlane-interpreter/config"
	"github.com/spf13/cobra"
)

// commonParams are the flags shared by every lzrouter command
type commonParams struct {
	configPath string
	network    string
	jsonRPC    string
	privateKey string
	logLevel   string
	telemetry  bool
}

var params commonParams

// RegisterFlags registers the shared flags as persistent flags of the lzrouter command
func RegisterFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&params.configPath,
		command.ConfigFlag,
		"",
		"path to a json, yaml, hcl or toml configuration file",
	)

	cmd.PersistentFlags().StringVar(
		&params.network,
		command.NetworkFlag,
		"",
		"name of the host network the command runs on (e.g. sepolia)",
	)

	cmd.PersistentFlags().StringVar(
		&params.jsonRPC,
		command.JSONRPCFlag,
		config.DefaultJSONRPCAddr,
		"the JSON RPC address of the host network",
	)

	cmd.PersistentFlags().StringVar(
		&params.privateKey,
		command.PrivateKeyFlag,
		"",
		"hex encoded private key of the account signing router transactions",
	)

	cmd.PersistentFlags().StringVar(
		&params.logLevel,
		command.LogLevelFlag,
		"INFO",
		"the log level for console output",
	)

	cmd.PersistentFlags().BoolVar(
		&params.telemetry,
		command.TelemetryFlag,
		false,
		"print the operation counters gathered during the run",
	)
}

// LoadConfig builds the configuration out of the defaults, the config file,
// the environment and the explicitly set flags, in increasing precedence
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if params.configPath != "" {
		var err error

		if cfg, err = config.ReadConfigFile(params.configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	for flag, apply := range map[string]func(){
		command.NetworkFlag:    func() { cfg.Network = params.network },
		command.JSONRPCFlag:    func() { cfg.JSONRPCAddr = params.jsonRPC },
		command.PrivateKeyFlag: func() { cfg.PrivateKey = params.privateKey },
		command.LogLevelFlag:   func() { cfg.LogLevel = params.logLevel },
		command.TelemetryFlag:  func() { cfg.Telemetry = params.telemetry },
	} {
		if f := cmd.Flag(flag); f != nil && f.Changed {
			apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
