package schema

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

// namespacePattern matches xmlns:<prefix>="<scheme>:<version>" and captures the version.
func namespacePattern(opts Options) *regexp.Regexp {
	return regexp.MustCompile(`xmlns:` + regexp.QuoteMeta(opts.NamespacePrefix) +
		`="` + regexp.QuoteMeta(opts.NamespaceScheme) + `:([^"]*)"`)
}

// ExtractNamespaceVersion finds the namespace declaration in the raw schema text
// and returns its version. The declaration must occur exactly once.
func ExtractNamespaceVersion(text string, filePath string, opts Options) (string, error) {
	opts = opts.withDefaults()
	matches := namespacePattern(opts).FindAllStringSubmatch(text, -1)

	declaration := fmt.Sprintf(`xmlns:%s="%s:<version>"`, opts.NamespacePrefix, opts.NamespaceScheme)
	switch len(matches) {
	case 1:
		return matches[0][1], nil
	case 0:
		return "", &Error{
			FilePath: filePath,
			Field:    "xmlns:" + opts.NamespacePrefix,
			Message:  "namespace declaration not found",
			Hint:     "The schema must declare " + declaration + " exactly once.",
		}
	default:
		found := make([]string, len(matches))
		for i, m := range matches {
			found[i] = m[1]
		}
		return "", &Error{
			FilePath: filePath,
			Field:    "xmlns:" + opts.NamespacePrefix,
			Message:  fmt.Sprintf("unexpected matches for namespace declaration: %d found %v", len(matches), found),
			Hint:     "The schema must declare " + declaration + " exactly once. Remove duplicates.",
		}
	}
}

// ParseRoot parses the schema text and returns its root element.
// The whole document is read so that syntax errors after the root tag are
// reported too. Non-UTF-8 encodings declared in the XML header are decoded.
// A document with more than one top-level element, or with text outside the
// root element, is rejected.
func ParseRoot(text string, filePath string) (*RootElement, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.CharsetReader = charset.NewReaderLabel

	var root *RootElement
	depth := 0
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapXMLError(err, filePath)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > 1 {
				continue
			}
			line, _ := decoder.InputPos()
			if root != nil {
				return nil, &Error{
					FilePath: filePath,
					Line:     line,
					Message:  fmt.Sprintf("junk after document element: <%s> follows root element <%s>", t.Name.Local, root.Name),
					Hint:     "The file must contain a single <xs:schema> root element.",
				}
			}
			root = &RootElement{Name: t.Name.Local, Line: line, attrs: make(map[string]string)}
			for _, attr := range t.Attr {
				if attr.Name.Space == "" {
					root.attrs[attr.Name.Local] = attr.Value
				}
			}
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				line, _ := decoder.InputPos()
				return nil, &Error{
					FilePath: filePath,
					Line:     line,
					Message:  "text outside the root element",
					Hint:     "Remove characters before or after the <xs:schema> element.",
				}
			}
		}
	}

	if root == nil {
		return nil, &Error{
			FilePath: filePath,
			Message:  "document has no root element",
			Hint:     "The file must be an XSD document with an <xs:schema> root element.",
		}
	}

	return root, nil
}

// TargetNamespaceVersion returns the segment after the last ':' of a targetNamespace value.
func TargetNamespaceVersion(attr string) (string, error) {
	idx := strings.LastIndex(attr, ":")
	if idx < 0 || idx == len(attr)-1 {
		return "", fmt.Errorf("targetNamespace %q has no trailing ':'-delimited version segment", attr)
	}
	return attr[idx+1:], nil
}

// IDVersion strips the id prefix, and a single 'v' after it, from an id value.
func IDVersion(attr string, opts Options) (string, error) {
	opts = opts.withDefaults()
	rest, ok := strings.CutPrefix(attr, opts.IDPrefix)
	if !ok {
		return "", fmt.Errorf("id %q does not start with %q", attr, opts.IDPrefix)
	}
	rest = strings.TrimPrefix(rest, "v")
	if rest == "" {
		return "", fmt.Errorf("id %q has no version after %q", attr, opts.IDPrefix)
	}
	return rest, nil
}

// Extract reads all version tokens from the schema text.
//
// Algorithm:
//  1. Match the namespace declaration in the raw text (exactly once)
//  2. Parse the XML and take the root element
//  3. Read targetNamespace, version and id from the root's attributes
//
// Every failure is a *Error wrapping xsdver.ErrMalformedInput.
func Extract(text string, filePath string, opts Options) (*Versions, error) {
	opts = opts.withDefaults()

	namespace, err := ExtractNamespaceVersion(text, filePath, opts)
	if err != nil {
		return nil, err
	}

	root, err := ParseRoot(text, filePath)
	if err != nil {
		return nil, err
	}

	targetNamespaceAttr, ok := root.Attr("targetNamespace")
	if !ok {
		return nil, missingAttr(filePath, root, "targetNamespace", `targetNamespace="`+opts.NamespaceScheme+`:<version>"`)
	}
	targetNamespace, err := TargetNamespaceVersion(targetNamespaceAttr)
	if err != nil {
		return nil, &Error{FilePath: filePath, Line: root.Line, Field: "targetNamespace", Message: err.Error(),
			Hint: `Expected targetNamespace="` + opts.NamespaceScheme + `:<version>".`}
	}

	version, ok := root.Attr("version")
	if !ok {
		return nil, missingAttr(filePath, root, "version", `version="<major>.<minor>.<patch>"`)
	}

	idAttr, ok := root.Attr("id")
	if !ok {
		return nil, missingAttr(filePath, root, "id", `id="`+opts.IDPrefix+`v<version>"`)
	}
	id, err := IDVersion(idAttr, opts)
	if err != nil {
		return nil, &Error{FilePath: filePath, Line: root.Line, Field: "id", Message: err.Error(),
			Hint: `Expected id="` + opts.IDPrefix + `<version>" or id="` + opts.IDPrefix + `v<version>".`}
	}

	return &Versions{
		Namespace:       namespace,
		TargetNamespace: targetNamespace,
		Version:         version,
		ID:              id,
	}, nil
}

func missingAttr(filePath string, root *RootElement, name, expected string) error {
	return &Error{
		FilePath: filePath,
		Line:     root.Line,
		Field:    name,
		Message:  fmt.Sprintf("root element <%s> has no %s attribute", root.Name, name),
		Hint:     "Add " + expected + " to the root element.",
	}
}
