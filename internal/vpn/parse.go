package vpn

import (
	"regexp"
	"strings"

	"github.com/bitfield/script"
)

var connectionPattern = regexp.MustCompile(`connection to (.+)`)

// ParseActiveConnection extracts the active OpenVPN profile from the output of
// `systemctl list-units --type=service`.
//
// Only the first line containing "openvpn", "active" and "running" is
// considered. The profile is whatever follows "connection to " on that line,
// trimmed of surrounding whitespace. It reports false when no line qualifies
// or the first qualifying line has no such phrase.
func ParseActiveConnection(listing string) (string, bool) {
	line, err := script.Echo(listing).
		Match("openvpn").
		Match("active").
		Match("running").
		First(1).
		String()
	if err != nil {
		return "", false
	}

	match := connectionPattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if match == nil {
		return "", false
	}

	profile := strings.TrimSpace(match[1])
	if profile == "" {
		return "", false
	}
	return profile, true
}
