package xsdver

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error (and the schema file missing)
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // All mandatory checks passed
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitSchemaNotFound  = 1  // Schema file does not exist
	ExitUsageError      = 2  // CLI usage error (invalid arguments or flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration file
	ExitMalformedInput  = 20 // Schema file lacks an expected pattern or attribute
	ExitVersionMismatch = 21 // Version tokens disagree or are badly shaped
)

const (
	// DefaultSchemaFileName is the schema validated when no path is supplied.
	// It is resolved relative to the directory of the running executable.
	DefaultSchemaFileName = "detection.xsd"

	// DefaultNamespacePrefix is the prefix of the namespace declaration
	// searched for in the raw schema text (xmlns:det="...").
	DefaultNamespacePrefix = "det"

	// DefaultNamespaceScheme is the URI scheme of the declared namespace
	// (xmlns:det="detection:<version>").
	DefaultNamespaceScheme = "detection"

	// DefaultIDPrefix is stripped from the root element's id attribute,
	// optionally followed by a "v".
	DefaultIDPrefix = "detection-"

	// DefaultSnapshotMarker marks an in-development build version. A supplied
	// version ending with it skips the supplied-version checks.
	DefaultSnapshotMarker = "SNAPSHOT"

	// MaxSchemaSize bounds the schema file read into memory.
	MaxSchemaSize = 16 * 1024 * 1024
)
