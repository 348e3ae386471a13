package command

const (
	JSONOutputFlag = "json"
	ConfigFlag     = "config"
	NetworkFlag    = "network"
	JSONRPCFlag    = "json-rpc"
	PrivateKeyFlag = "private-key"
	TelemetryFlag  = "telemetry"
	LogLevelFlag   = "log-level"
)
