package builder

import "strings"

// ParseOptions turns a multi-line text block into an enum option list:
// one option per line, lines that are empty or whitespace-only are
// dropped, kept lines are preserved verbatim (including any surrounding
// whitespace). Order and duplicates are preserved.
func ParseOptions(text string) []string {
	var opts []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		opts = append(opts, line)
	}
	return opts
}

// JoinOptions is the inverse presentation of ParseOptions, used to
// pre-populate the options editor.
func JoinOptions(opts []string) string {
	return strings.Join(opts, "\n")
}
