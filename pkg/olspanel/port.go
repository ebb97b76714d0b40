package olspanel

import (
	"strconv"
	"strings"
)

// DefaultPort is the OLSPanel admin port used when none is configured.
const DefaultPort = 6844

// ResolvePort returns raw as a port when it is a canonical decimal integer in
// [0, 65535] and DefaultPort otherwise. Surrounding whitespace and one leading
// sign are accepted, so "-0" reads as 0; leading zeros are not.
func ResolvePort(raw string) int {
	s := strings.TrimSpace(raw)
	negative := strings.HasPrefix(s, "-")
	if negative || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return DefaultPort
	}

	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return DefaultPort
	}
	if negative && n != 0 {
		return DefaultPort
	}
	if n < 0 || n > 65535 {
		return DefaultPort
	}
	return n
}
