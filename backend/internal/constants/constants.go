package constants

// Server constants
const (
	// DefaultPort is used when PORT is unset
	DefaultPort = "8080"

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown when SHUTDOWN_TIMEOUT_SECONDS is unset
	DefaultShutdownTimeoutSeconds = 5

	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-ID"
)

// Scenario constants
const (
	// DefaultScenarioFile is the scenario the seed command reads without -file
	DefaultScenarioFile = "family.yaml"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)
