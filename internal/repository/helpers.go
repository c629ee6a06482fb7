package repository

import (
	"strings"
	"time"
)

// Enum options are stored newline-joined. This is lossless because
// options are parsed from single lines and can never contain a newline.
const optionsSep = "\n"

func joinOptions(opts []string) string {
	return strings.Join(opts, optionsSep)
}

func splitOptions(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, optionsSep)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// parseTime parses an RFC3339 timestamp column, returning the zero time
// on malformed input rather than failing the whole scan.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
