package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "jreader"

	// ConfigFileName is the default config file name
	ConfigFileName = "jreader.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "JREADER"

	// EnvConfigPath names a config file used when discovery finds none
	EnvConfigPath = EnvVarPrefix + "_CONFIG"

	// DotEnvFile is loaded into the environment before configuration
	DotEnvFile = ".env"
)

// Source file constants
const (
	// DefaultExtension is the suffix of the files analyzed by default
	DefaultExtension = ".java"

	// GitignoreFile is the ignore file honored in the analyzed directory
	GitignoreFile = ".gitignore"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
	OutputFormatCSV  = "csv"
)

// Report constants
const (
	// DefaultTopMethods is how many methods the text report lists per file
	DefaultTopMethods = 3

	// NamingViolationLabel prefixes the naming percentage line
	NamingViolationLabel = "(%) Methods not following CamelCase: "
)
