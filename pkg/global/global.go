package global

var (
	Version   = "0.0.1"
	BuildTime = "none"
	Verbose   = false

	// LaunchableFilename is the config file written by `launchpad init`.
	LaunchableFilename = "launchable.yaml"

	// IgnoreFilename lists patterns the VRAM scanner should skip.
	IgnoreFilename = ".launchignore"
)
