package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "dynver.yaml"

	// DefaultParallelism bounds concurrent resolutions when no value is given.
	DefaultParallelism = 8
)
