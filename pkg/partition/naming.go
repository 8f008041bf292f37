package partition

import (
	"regexp"
	"strings"
)

// Prefix namespaces tenant partitions away from system tables.
const Prefix = "org_"

var (
	whitespaceRgx = regexp.MustCompile(`\s+`)
	disallowedRgx = regexp.MustCompile(`[^a-z0-9_\-]`)
)

// Sanitize normalizes a display name to the characters allowed in a
// partition identifier: trim, lowercase, collapse whitespace runs to a
// single underscore, strip everything outside [a-z0-9_-].
func Sanitize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRgx.ReplaceAllString(s, "_")
	return disallowedRgx.ReplaceAllString(s, "")
}

// DeriveID maps an organization display name to its partition identifier.
// Deterministic and total; distinct display names may normalize to the
// same identifier, which the registry's uniqueness checks guard against.
func DeriveID(name string) string {
	return Prefix + Sanitize(name)
}
