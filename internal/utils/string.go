package utils

import "strings"

// TrimOutputToString converts command output to a trimmed string.
func TrimOutputToString(out []byte) string {
	return strings.TrimSpace(string(out))
}
