package assistant

import "strings"

// Parse splits a line into a lower-cased command word and its arguments.
// A blank line yields an empty command.
func Parse(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}
