package utils

const (
	// ApplicationName is the executable and configuration namespace.
	ApplicationName = "dirtree"
	// ConfigFileName is the name of the working-directory configuration file.
	ConfigFileName = ".dirtree.yaml"
	// GlobalConfigDirectoryName is the directory under the home directory holding global configuration.
	GlobalConfigDirectoryName = ".dirtree"
	// GlobalConfigFileName is the name of the global configuration file.
	GlobalConfigFileName = "config.yaml"
	// DefaultDirectory is scanned when no path argument is given.
	DefaultDirectory = "."

	// LoggerInitializationFailedMessageFormat reports a failure to construct the logger.
	LoggerInitializationFailedMessageFormat = "initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command failures.
	ApplicationExecutionFailedMessage = "dirtree failed"
)
