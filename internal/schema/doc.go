// Package schema extracts the version tokens embedded in a detection XSD file.
//
// # Sources
//
// Four tokens are read from one schema text:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
//	    xmlns:det="detection:7"                         <- namespace (raw text)
//	    targetNamespace="detection:7"                   <- targetNamespace (root attribute)
//	    version="7.2.0"                                 <- version (root attribute)
//	    id="detection-v7.2.0">                          <- id (root attribute)
//
// The namespace declaration is matched with a regular expression over the raw
// text and must occur exactly once. The other three come from the attributes
// of the parsed root element. The two steps are independent; Extract merges
// their results into one Versions value of plain strings.
//
// # Errors
//
// Every extraction failure is a *Error wrapping xsdver.ErrMalformedInput, so
// callers can classify with errors.Is and still show the field and hint.
package schema
