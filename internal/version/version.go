package version

// Set via -ldflags at build time; defaults cover local runs.
var (
	AppName   = "glassbot"
	AppFull   = "MLVS.me Bot"
	Version   = "dev"
	SourceURL = "https://mlvs.me"
)
