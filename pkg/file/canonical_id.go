package file

import "github.com/google/uuid"

const canonicalIDLength = 36

// IsCanonicalID accepts only the hyphenated 8-4-4-4-12 UUID form. uuid.Parse also takes
// braces, "urn:uuid:" and bare hex; those are rejected here.
func IsCanonicalID(s string) bool {
	if len(s) != canonicalIDLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
