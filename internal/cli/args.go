package cli

import (
	"fmt"
)

// positionalArgs are the values taken from the command line.
type positionalArgs struct {
	version    string
	schemaPath string
	// ignored is set when the argument count was not 0, 1 or 2.
	ignored bool
}

// resolveArgs maps positional arguments to the build version and schema path.
//
//	0 args: no version, default schema
//	1 arg:  version
//	2 args: version, schema path
//
// Any other count leaves both empty, or with strict is a usage error.
func resolveArgs(args []string, strict bool) (positionalArgs, error) {
	switch len(args) {
	case 0:
		return positionalArgs{}, nil
	case 1:
		return positionalArgs{version: args[0]}, nil
	case 2:
		return positionalArgs{version: args[0], schemaPath: args[1]}, nil
	}

	if strict {
		return positionalArgs{}, fmt.Errorf(`accepts at most 2 arg(s), received %d

Usage: xsdver [version] [schema_path]

Example:
  xsdver v7.2.0 ./detection.xsd`, len(args))
	}
	return positionalArgs{ignored: true}, nil
}
