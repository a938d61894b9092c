package utils

const (
	// EmptyString represents a reusable empty string constant.
	EmptyString = ""

	// ApplicationName is the binary and configuration namespace.
	ApplicationName = "imgtree"

	// ConfigFileName is the file read from the working and global configuration directories.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding global configuration.
	GlobalConfigDirectoryName = "." + ApplicationName
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "imgtree failed"

	standardErrorSink = "stderr"
)
