package version

// Build information, overridden through -ldflags "-X" at release time
var (
	Version = "v0.1.0"

	Commit    = "unknown"
	BuildTime = "unknown"
)
