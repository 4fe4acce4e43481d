package catalog

import "strings"

// Platform values follow runtime.GOOS.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
)

// IsWindows reports whether platform uses cmd.exe quoting.
func IsWindows(platform string) bool {
	return strings.EqualFold(platform, Windows)
}

// Quote renders value as a single shell word for platform. Plain words are
// left untouched.
func Quote(platform, value string) string {
	if isPlain(value) {
		return value
	}
	if IsWindows(platform) {
		return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
	}
	return `'` + strings.ReplaceAll(value, `'`, `'\''`) + `'`
}

func isPlain(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-', r == '@', r == '+', r == '/', r == ':', r == '=':
		default:
			return false
		}
	}
	return true
}
