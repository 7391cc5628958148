package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/xsdver/internal/checker"
	"github.com/vvka-141/xsdver/internal/config"
	"github.com/vvka-141/xsdver/internal/files/filesystem"
	"github.com/vvka-141/xsdver/internal/logging"
	"github.com/vvka-141/xsdver/internal/report"
	"github.com/vvka-141/xsdver/internal/schema"
)

type checkFlagValues struct {
	configPath  string
	strictArgs  bool
	noColor     bool
	output      string
	showVersion bool
}

var checkFlags checkFlagValues

func runCheck(cmd *cobra.Command, args []string) error {
	if checkFlags.showVersion {
		printVersionInfo(cmd.OutOrStdout())
		return nil
	}

	verbose := getVerboseFlag(cmd)
	loadDotEnv()

	cfg, err := loadProjectConfig(checkFlags.configPath)
	if err != nil {
		return err
	}

	output := checkFlags.output
	if output == "" {
		output = cfg.Output
	}
	switch output {
	case "":
		output = config.OutputText
	case config.OutputText, config.OutputJSON:
	default:
		return fmt.Errorf("invalid argument %q for \"--output\" flag: must be %q or %q", output, config.OutputText, config.OutputJSON)
	}

	pos, err := resolveArgs(args, checkFlags.strictArgs || cfg.StrictArgs)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, verbose, output == config.OutputJSON)
	if pos.ignored {
		logger.Warn("ignoring %d arguments %v; expected [version] [schema_path]", len(args), args)
	}

	in := resolveInputs(pos, cfg)
	logger.Info("version [%s], schema file [%s]", in.version, in.schemaPath)
	if in.schemaPath == "" {
		in.schemaPath = defaultSchemaPath()
		logger.Verbose("using default schema %s", in.schemaPath)
	}

	c := checker.New(filesystem.NewOSFileSystem(), logger, checker.Options{
		Schema: schema.Options{
			NamespacePrefix: cfg.NamespacePrefix,
			NamespaceScheme: cfg.NamespaceScheme,
			IDPrefix:        cfg.IDPrefix,
		},
		SnapshotMarker: cfg.SnapshotMarker,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, runErr := c.Run(ctx, in.schemaPath, in.version)

	if output == config.OutputJSON {
		if err := report.Write(cmd.OutOrStdout(), report.Build(in.schemaPath, result, runErr)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("")
	logger.Info("Done!")
	return nil
}

// newLogger builds the console logger for a run. With jsonOutput, progress
// lines are moved to stderr so stdout carries only the report.
func newLogger(cmd *cobra.Command, verbose, jsonOutput bool) *logging.ConsoleLogger {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	if out == os.Stdout && errOut == os.Stderr && !jsonOutput {
		return logging.NewConsoleLogger(verbose, checkFlags.noColor)
	}
	if jsonOutput {
		out = errOut
	}
	return logging.NewConsoleLoggerWithWriters(verbose, out, errOut, colorFor(errOut))
}

func colorFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return logging.ColorEnabled(checkFlags.noColor, f)
}
