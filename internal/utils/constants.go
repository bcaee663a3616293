package utils

const (
	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ConfigurationLoadFailedMessageFormat reports an invalid environment configuration.
	ConfigurationLoadFailedMessageFormat = "failed to load configuration: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors logged by main.
	ApplicationExecutionFailedMessage = "allfiles failed"
)
