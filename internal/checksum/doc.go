// Package checksum hashes schema content so a report identifies exactly which
// file revision was validated.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.CalculateRaw(content)
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
