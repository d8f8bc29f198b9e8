package constants

// Application Information
const (
	AppName    = "Prime Panel Storefront"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default Application Settings
const (
	DefaultPort        = "8080"
	DefaultEnvironment = EnvDevelopment
)

// Panel path layout. SessionGate redirects a SALES session hitting a
// restricted prefix to PanelDefaultPath instead of returning an error.
const (
	PanelPrefix      = "/panel"
	PanelDefaultPath = "/panel/orders"
)

// RestrictedPanelPrefixes are reachable by ADMIN only.
var RestrictedPanelPrefixes = []string{
	"/panel/products",
	"/panel/categories",
	"/panel/plans",
	"/panel/staff",
	"/panel/customers",
}

// Log Levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
