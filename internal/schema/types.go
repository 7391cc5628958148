package schema

import "github.com/vvka-141/xsdver/pkg/xsdver"

// Versions holds the version tokens extracted from one schema file.
type Versions struct {
	// Namespace is the version in the xmlns:det="detection:<version>" declaration.
	Namespace string
	// TargetNamespace is the segment after the last ':' of the targetNamespace attribute.
	TargetNamespace string
	// Version is the root element's version attribute, verbatim.
	Version string
	// ID is the root element's id attribute without its detection[-v] prefix.
	ID string
}

// RootElement is the first element of a schema document.
type RootElement struct {
	Name  string
	Line  int
	attrs map[string]string
}

// Attr returns the value of an unprefixed attribute and whether it was present.
func (r *RootElement) Attr(name string) (string, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

// Options control the literal shapes the extractor looks for.
type Options struct {
	// NamespacePrefix is the prefix bound by the namespace declaration ("det").
	NamespacePrefix string
	// NamespaceScheme is the URI scheme of the declared namespace ("detection").
	NamespaceScheme string
	// IDPrefix is stripped from the id attribute, optionally followed by 'v' ("detection-").
	IDPrefix string
}

// DefaultOptions returns the options for detection schemas.
func DefaultOptions() Options {
	return Options{
		NamespacePrefix: xsdver.DefaultNamespacePrefix,
		NamespaceScheme: xsdver.DefaultNamespaceScheme,
		IDPrefix:        xsdver.DefaultIDPrefix,
	}
}

// withDefaults fills empty fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.NamespacePrefix == "" {
		o.NamespacePrefix = d.NamespacePrefix
	}
	if o.NamespaceScheme == "" {
		o.NamespaceScheme = d.NamespaceScheme
	}
	if o.IDPrefix == "" {
		o.IDPrefix = d.IDPrefix
	}
	return o
}
