package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xsdver [version] [schema_path]",
	Short: "Check the version identifiers of a detection XSD",
	Long: `xsdver checks that the version identifiers embedded in a detection XML Schema
are consistent with each other and with the build version being released.

Arguments:
  version        Build version, e.g. v7.2.0 or 7.2.0-SNAPSHOT (optional)
                 A leading 'v' is ignored. SNAPSHOT versions skip the
                 planned-version checks.
  schema_path    Path to the schema (optional, default: detection.xsd next
                 to the xsdver executable)

Any other number of arguments falls back to the defaults for both,
unless --strict-args is set.

Checks:
  - xmlns:det="detection:<v>" is declared exactly once
  - the declared namespace version equals the targetNamespace version
  - the version attribute equals the version in the id attribute
  - for a release build: the version attribute equals the build version
    and has the shape MAJOR.MINOR.PATCH or MAJOR.MINOR-(alpha|beta).N
  - for a release build: the version attribute starts with the
    targetNamespace version (warning only)

Exit Codes:
  0  - Success
  1  - General error or schema file not found
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration file
  20 - Malformed schema (missing declaration or attribute)
  21 - Version mismatch`,
	Example: `  # Check the default schema only for internal consistency
  xsdver

  # Check against a release version
  xsdver v7.2.0 ./schema/detection.xsd

  # Emit a JSON report
  xsdver 7.2.0 detection.xsd --output json`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runCheck,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVar(&checkFlags.showVersion, "version", false, "Show version information")
	rootCmd.Flags().StringVarP(&checkFlags.configPath, "config", "c", "",
		"Path to a config file (.yaml, .yml or .toml)\n"+
			"Default: xsdver.yaml, xsdver.yml or xsdver.toml in the working directory")
	rootCmd.Flags().BoolVar(&checkFlags.strictArgs, "strict-args", false,
		"Reject more than two positional arguments instead of ignoring them")
	rootCmd.Flags().BoolVar(&checkFlags.noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVarP(&checkFlags.output, "output", "o", "",
		"Output format: text or json (default text)\n"+
			"With json, progress goes to stderr and the report to stdout")

	_ = rootCmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
