package checker

import (
	"context"
	"fmt"

	"github.com/vvka-141/xsdver/internal/checksum"
	"github.com/vvka-141/xsdver/internal/files/filesystem"
	"github.com/vvka-141/xsdver/internal/schema"
	"github.com/vvka-141/xsdver/pkg/xsdver"
)

// Options configure a Checker.
type Options struct {
	Schema         schema.Options
	SnapshotMarker string
	// MaxSchemaSize bounds the file read; zero means xsdver.MaxSchemaSize.
	MaxSchemaSize int64
}

// Checker validates the version tokens of one schema file per Run.
type Checker struct {
	fs       filesystem.FileSystemProvider
	logger   xsdver.Logger
	checksum checksum.Calculator
	opts     Options
}

// New creates a Checker reading through fs and reporting progress to logger.
func New(fs filesystem.FileSystemProvider, logger xsdver.Logger, opts Options) *Checker {
	if opts.SnapshotMarker == "" {
		opts.SnapshotMarker = xsdver.DefaultSnapshotMarker
	}
	if opts.MaxSchemaSize <= 0 {
		opts.MaxSchemaSize = xsdver.MaxSchemaSize
	}
	return &Checker{fs: fs, logger: logger, checksum: checksum.New(), opts: opts}
}

// Run validates the schema at schemaPath against suppliedVersion.
// An empty suppliedVersion means no build version was given.
//
// The returned report is non-nil once the file has been read, so callers can
// render it even when err is a malformed-input or mismatch error.
//
// Errors:
//   - xsdver.ErrSchemaNotFound: schemaPath is not an existing regular file
//   - xsdver.ErrMalformedInput: a token could not be extracted (*schema.Error)
//   - xsdver.ErrVersionMismatch: a fatal check failed (*MismatchError)
func (c *Checker) Run(ctx context.Context, schemaPath, suppliedVersion string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	supplied := NormalizeSuppliedVersion(suppliedVersion)
	if supplied != "" {
		c.logger.Info("Build version: %s", supplied)
	}

	ok, err := filesystem.IsRegularFile(c.fs, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat schema file %s: %w", schemaPath, err)
	}
	if !ok {
		c.logger.Error("Schema file %s doesn't exist", schemaPath)
		return nil, fmt.Errorf("%w: %s", xsdver.ErrSchemaNotFound, schemaPath)
	}

	c.logger.Info("")
	c.logger.Info("Validating file %s", schemaPath)

	content, err := c.readSchema(schemaPath)
	if err != nil {
		return nil, err
	}

	report := &Report{
		SchemaPath:      schemaPath,
		SchemaSHA256:    c.checksum.CalculateRaw(content),
		SuppliedVersion: supplied,
	}
	c.logger.Verbose("schema sha256 %s", report.SchemaSHA256)

	versions, err := schema.Extract(string(content), schemaPath, c.opts.Schema)
	if err != nil {
		return report, err
	}
	report.Versions = versions

	c.logger.Info("namespace version: [%s]", versions.Namespace)
	c.logger.Info("targetNamespace:   [%s]", versions.TargetNamespace)
	c.logger.Info("version:           [%s]", versions.Version)
	c.logger.Info("id:                [%s]", versions.ID)
	c.logger.Info("")

	in := Input{Versions: *versions, SuppliedVersion: supplied, SnapshotMarker: c.opts.SnapshotMarker}
	if supplied != "" && !releasing(in) {
		c.logger.Verbose("%s build version, skipping planned version checks", c.opts.SnapshotMarker)
	}

	report.Results = Evaluate(in)
	for _, res := range report.Results {
		c.logger.Verbose("check %-16s %-8s %s", res.Name, res.Kind, outcome(res))
	}
	for _, w := range report.Warnings() {
		c.logger.Warn("%s", w.Message)
	}

	if fatal := report.FirstFatal(); fatal != nil {
		return report, &MismatchError{Check: fatal.Name, Message: fatal.Message}
	}

	return report, nil
}

func (c *Checker) readSchema(path string) ([]byte, error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat schema file %s: %w", path, err)
	}
	if info.Size() > c.opts.MaxSchemaSize {
		return nil, &schema.Error{
			FilePath: path,
			Message:  fmt.Sprintf("file exceeds maximum size of %d bytes (got %d bytes)", c.opts.MaxSchemaSize, info.Size()),
		}
	}

	content, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return content, nil
}

func outcome(r Result) string {
	switch {
	case r.Skipped:
		return "skipped"
	case r.Passed:
		return "passed"
	default:
		return "failed"
	}
}
