package utils

import "regexp"

var screenIDRe = regexp.MustCompile(`^TV_\d{3}$`)

// IsScreenID reports whether id matches the TV_### screen id shape.
func IsScreenID(id string) bool {
	return screenIDRe.MatchString(id)
}
