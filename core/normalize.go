// SPDX-License-Identifier: MIT

package core

import "strings"

// NormalizeName trims surrounding whitespace. Casing is preserved.
// Complexity: O(len(name)).
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeCode trims and lowercases code, making codes case-insensitive.
// NormalizeCode is idempotent; whitespace-only input yields "".
// Complexity: O(len(code)).
func NormalizeCode(code string) string {
	return strings.ToLower(NormalizeName(code))
}
